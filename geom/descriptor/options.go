package descriptor

// Config controls descriptor computation.
type Config struct {
	// Samples is the number of arc-length samples and the FFT size.
	Samples int
	// Harmonics is the number of harmonics kept on each side of DC.
	Harmonics int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 64 samples and 8 harmonics.
func DefaultConfig() Config {
	return Config{
		Samples:   64,
		Harmonics: 8,
	}
}

// WithSamples sets the resampling size. It must be a power of two >= 8;
// other values are ignored.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		if n >= 8 && n&(n-1) == 0 {
			cfg.Samples = n
		}
	}
}

// WithHarmonics sets the number of harmonics per side. Values <= 0 are
// ignored.
func WithHarmonics(k int) Option {
	return func(cfg *Config) {
		if k > 0 {
			cfg.Harmonics = k
		}
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
	return cfg
}
