package render

// Config controls the contact sheet layout.
type Config struct {
	// CellSize is the edge length of one grid cell in pixels.
	CellSize int
	// Margin is the padding inside each cell in pixels.
	Margin int
	// LineWidth is the outline stroke width in pixels.
	LineWidth float64
	// Labels enables the "index kind" caption under each figure.
	Labels bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 128px cells with a 12px margin and labels on.
func DefaultConfig() Config {
	return Config{
		CellSize:  128,
		Margin:    12,
		LineWidth: 2,
		Labels:    true,
	}
}

// WithCellSize sets the cell edge length. Values below 16 are ignored.
func WithCellSize(px int) Option {
	return func(cfg *Config) {
		if px >= 16 {
			cfg.CellSize = px
		}
	}
}

// WithMargin sets the cell padding. Negative values are ignored.
func WithMargin(px int) Option {
	return func(cfg *Config) {
		if px >= 0 {
			cfg.Margin = px
		}
	}
}

// WithLineWidth sets the stroke width. Values <= 0 are ignored.
func WithLineWidth(w float64) Option {
	return func(cfg *Config) {
		if w > 0 {
			cfg.LineWidth = w
		}
	}
}

// WithLabels toggles captions.
func WithLabels(on bool) Option {
	return func(cfg *Config) {
		cfg.Labels = on
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	// Keep at least a few pixels of drawing area.
	if 2*cfg.Margin > cfg.CellSize-8 {
		cfg.Margin = (cfg.CellSize - 8) / 2
	}
	return cfg
}
