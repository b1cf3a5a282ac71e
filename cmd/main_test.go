package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/okian/scorecard/internal/adapters/http/api"
	"github.com/okian/scorecard/internal/adapters/imageproxy"
	"github.com/okian/scorecard/internal/adapters/upstream"
	app "github.com/okian/scorecard/internal/app"
	"github.com/okian/scorecard/internal/config"
	"github.com/okian/scorecard/internal/domain/card"
	"github.com/okian/scorecard/internal/domain/layout"
	"github.com/okian/scorecard/internal/domain/present"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMainWiring(t *testing.T) {
	Convey("Given the main application", t, func() {
		Convey("When testing configuration loading", func() {
			_ = os.Setenv("SCORECARD_ADDR", ":8080")
			_ = os.Setenv("SCORECARD_DEBOUNCE_MS", "200")
			defer func() {
				_ = os.Unsetenv("SCORECARD_ADDR")
				_ = os.Unsetenv("SCORECARD_DEBOUNCE_MS")
			}()

			Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				So(err, ShouldBeNil)
				So(cfg, ShouldNotBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.DebounceMS, ShouldEqual, 200)
			})
		})

		Convey("When assembling the service the way main does", func() {
			cfg := config.New()
			client := upstream.New(cfg.UpstreamBaseURL)
			proxy := imageproxy.New(cfg.ImageProxyBase)
			ramp := present.NewRamp(cfg.GradientRamp)
			assembler := card.New(layout.NewBasicMeasurer(), proxy, ramp)
			svc := app.New(client, client, assembler)

			So(ramp, ShouldNotBeNil)
			So(svc, ShouldNotBeNil)

			Convey("Then HTTP routes should register on a fresh mux", func() {
				mux := http.NewServeMux()
				api.NewServer(svc, svc).Register(context.Background(), mux)
				So(mux, ShouldNotBeNil)
			})
		})
	})
}
