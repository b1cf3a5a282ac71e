// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() with defaults and Load(ctx) layering file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// DebounceMS is the edit-coalescing delay for editing sessions.
	DebounceMS int `koanf:"debounce_ms"`

	// UpstreamBaseURL is the gameplay-data API root.
	UpstreamBaseURL string `koanf:"upstream_base_url"`

	// UpstreamToken is the bearer token for the gameplay-data API.
	UpstreamToken string `koanf:"upstream_token"`

	// UpstreamTimeoutMS bounds one upstream fetch.
	UpstreamTimeoutMS int `koanf:"upstream_timeout_ms"`

	// RendererURL is the rasterizer endpoint; empty disables export.
	RendererURL string `koanf:"renderer_url"`

	// RenderTimeoutMS bounds one export end to end.
	RenderTimeoutMS int `koanf:"render_timeout_ms"`

	// ImageProxyBase rewrites image references; empty passes them through.
	ImageProxyBase string `koanf:"image_proxy_base"`

	// CounterPath locates the on-disk render counter.
	CounterPath string `koanf:"counter_path"`

	// GradientRamp lists the hex stops of the difficulty color ramp. Fewer
	// than two valid stops selects the discrete fallback table.
	GradientRamp []string `koanf:"gradient_ramp"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":8090",
		DebounceMS:        400,
		UpstreamBaseURL:   "https://osu.ppy.sh/api/v2",
		UpstreamTimeoutMS: 10_000,
		RenderTimeoutMS:   15_000,
		CounterPath:       "data/render_count",
		GradientRamp: []string{
			"#4290fb", "#4fc0ff", "#4fffd5", "#7cff4f", "#f6f05c",
			"#ff8068", "#ff4e6f", "#c645b8", "#6563de", "#18158e", "#000000",
		},
	}
}
