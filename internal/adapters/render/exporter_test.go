package render_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/scorecard/internal/adapters/render"
	"github.com/okian/scorecard/internal/domain/card"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExport(t *testing.T) {
	Convey("Given a rasterizer endpoint", t, func() {
		var gotJob string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotJob = r.Header.Get("X-Render-Job")
			var l card.Layout
			if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte("png-bytes"))
		}))
		defer srv.Close()

		ctx := context.Background()

		Convey("A successful export returns the image bytes and tags a job id", func() {
			e := render.New(srv.URL)
			img, err := e.Export(ctx, card.Layout{})
			So(err, ShouldBeNil)
			So(img, ShouldResemble, []byte("png-bytes"))
			So(gotJob, ShouldNotBeBlank)
		})

		Convey("A failing endpoint wraps ErrRender", func() {
			bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer bad.Close()

			_, err := render.New(bad.URL).Export(ctx, card.Layout{})
			So(errors.Is(err, render.ErrRender), ShouldBeTrue)
		})

		Convey("The bounded wait cuts off a stalled export", func() {
			slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(500 * time.Millisecond)
			}))
			defer slow.Close()

			e := render.New(slow.URL, render.WithWait(50*time.Millisecond))
			_, err := e.Export(ctx, card.Layout{})
			So(errors.Is(err, render.ErrRender), ShouldBeTrue)
		})
	})
}
