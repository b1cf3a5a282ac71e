package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/okian/scorecard/internal/adapters/counter"
	app "github.com/okian/scorecard/internal/app"
	"github.com/okian/scorecard/internal/domain/card"
	"github.com/okian/scorecard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeExporter struct {
	calls int
	fail  bool
}

func (f *fakeExporter) Export(_ context.Context, _ card.Layout) ([]byte, error) {
	f.calls++
	if f.fail {
		return nil, context.DeadlineExceeded
	}
	return []byte("png-bytes"), nil
}

func TestServiceCards(t *testing.T) {
	Convey("Given the card service", t, func() {
		scores := &fakeScores{}
		maps := &fakeMaps{}
		svc := newService(scores, maps)
		ctx := context.Background()

		Convey("ScoreCard builds a score-backed layout with overrides applied", func() {
			l, err := svc.ScoreCard(ctx, 42, model.OverrideSet{Rank: "x"})
			So(err, ShouldBeNil)
			So(l.Canonical.Rank, ShouldEqual, "X")
			So(l.Canonical.Preview, ShouldBeFalse)
		})

		Convey("MapCard builds a preview layout", func() {
			l, err := svc.MapCard(ctx, 12, model.OverrideSet{})
			So(err, ShouldBeNil)
			So(l.Canonical.Preview, ShouldBeTrue)
		})

		Convey("A fetch failure propagates wrapped", func() {
			scores.err = context.DeadlineExceeded
			_, err := svc.ScoreCard(ctx, 42, model.OverrideSet{})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestServiceRender(t *testing.T) {
	Convey("Given a service with exporter and counter wired", t, func() {
		ctx := context.Background()
		store, err := counter.NewFileStore(filepath.Join(t.TempDir(), "count"))
		So(err, ShouldBeNil)

		exp := &fakeExporter{}
		assemblerSvc := newService(&fakeScores{}, &fakeMaps{})
		l, err := assemblerSvc.ScoreCard(ctx, 42, model.OverrideSet{})
		So(err, ShouldBeNil)

		svc := app.New(&fakeScores{}, &fakeMaps{}, nil,
			app.WithExporter(exp), app.WithCounter(store))

		Convey("RenderCard returns image bytes and bumps the counter", func() {
			img, err := svc.RenderCard(ctx, l)
			So(err, ShouldBeNil)
			So(img, ShouldResemble, []byte("png-bytes"))

			v, err := store.Value(ctx)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1)
		})

		Convey("A failed export leaves the counter alone", func() {
			exp.fail = true
			_, err := svc.RenderCard(ctx, l)
			So(err, ShouldNotBeNil)

			v, err := store.Value(ctx)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 0)
		})

		Convey("Without an exporter RenderCard refuses", func() {
			bare := app.New(&fakeScores{}, &fakeMaps{}, nil)
			_, err := bare.RenderCard(ctx, l)
			So(err, ShouldEqual, app.ErrNoExporter)
		})

		Convey("GetStats reports the render count", func() {
			_, err := svc.RenderCard(ctx, l)
			So(err, ShouldBeNil)
			stats := svc.GetStats()
			So(stats["cards_rendered"], ShouldEqual, int64(1))
		})
	})
}
