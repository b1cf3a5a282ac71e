package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/scorecard/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"SCORECARD_CONFIG",
	"SCORECARD_LOG_LEVEL",
	"SCORECARD_ADDR",
	"SCORECARD_DEBOUNCE_MS",
	"SCORECARD_UPSTREAM_BASE_URL",
	"SCORECARD_UPSTREAM_TOKEN",
	"SCORECARD_RENDERER_URL",
	"SCORECARD_COUNTER_PATH",
}

func clearConfigEnvVars() {
	for _, v := range configEnvVars {
		_ = os.Unsetenv(v)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		Reset(clearConfigEnvVars)

		Convey("When loading with defaults only", func() {
			cfg, err := config.Load(ctx)

			Convey("Then it should load successfully with defaults", func() {
				So(err, ShouldBeNil)
				So(cfg, ShouldNotBeNil)
				So(cfg.Addr, ShouldEqual, ":8090")
				So(cfg.DebounceMS, ShouldEqual, 400)
				So(cfg.UpstreamBaseURL, ShouldEqual, "https://osu.ppy.sh/api/v2")
			})
		})

		Convey("When loading with environment variables", func() {
			_ = os.Setenv("SCORECARD_ADDR", ":8080")
			_ = os.Setenv("SCORECARD_DEBOUNCE_MS", "250")
			_ = os.Setenv("SCORECARD_UPSTREAM_TOKEN", "sekrit")

			cfg, err := config.Load(ctx)

			Convey("Then env vars should override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.DebounceMS, ShouldEqual, 250)
				So(cfg.UpstreamToken, ShouldEqual, "sekrit")
				So(cfg.CounterPath, ShouldEqual, "data/render_count")
			})
		})

		Convey("When loading from a YAML file", func() {
			tmpFile := createTempConfigFile(t, `
addr: ":9090"
debounce_ms: 600
renderer_url: "http://renderer:4000/render"
`)
			_ = os.Setenv("SCORECARD_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			Convey("Then file values should layer over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9090")
				So(cfg.DebounceMS, ShouldEqual, 600)
				So(cfg.RendererURL, ShouldEqual, "http://renderer:4000/render")
				So(cfg.UpstreamBaseURL, ShouldEqual, "https://osu.ppy.sh/api/v2")
			})
		})

		Convey("When both file and environment variables are set", func() {
			tmpFile := createTempConfigFile(t, `
addr: ":9090"
debounce_ms: 600
`)
			_ = os.Setenv("SCORECARD_CONFIG", tmpFile)
			_ = os.Setenv("SCORECARD_ADDR", ":8080")

			cfg, err := config.Load(ctx)

			Convey("Then env should win over the file", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.DebounceMS, ShouldEqual, 600)
			})
		})

		Convey("When the YAML file is invalid", func() {
			tmpFile := createTempConfigFile(t, `invalid: yaml: content: [`)
			_ = os.Setenv("SCORECARD_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			So(err, ShouldNotBeNil)
			So(cfg, ShouldBeNil)
		})

		Convey("When the config file does not exist", func() {
			_ = os.Setenv("SCORECARD_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			So(err, ShouldNotBeNil)
			So(cfg, ShouldBeNil)
		})

		Convey("When addr is empty", func() {
			_ = os.Setenv("SCORECARD_ADDR", "")

			cfg, err := config.Load(ctx)

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "addr must not be empty")
			So(cfg, ShouldBeNil)
		})

		Convey("When debounce_ms is not positive", func() {
			_ = os.Setenv("SCORECARD_DEBOUNCE_MS", "0")

			cfg, err := config.Load(ctx)

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "debounce_ms must be positive")
			So(cfg, ShouldBeNil)
		})

		Convey("When upstream_base_url is cleared", func() {
			_ = os.Setenv("SCORECARD_UPSTREAM_BASE_URL", "")

			cfg, err := config.Load(ctx)

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "upstream_base_url must not be empty")
			So(cfg, ShouldBeNil)
		})
	})
}
