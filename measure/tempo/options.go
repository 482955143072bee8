package tempo

// TapperConfig defines configuration for a Tapper.
type TapperConfig struct {
	Clock Clock
}

// TapperOption mutates a TapperConfig.
type TapperOption func(*TapperConfig)

// DefaultTapperConfig returns a config reading the system clock.
func DefaultTapperConfig() TapperConfig {
	return TapperConfig{
		Clock: SystemClock{},
	}
}

// WithClock sets the time source used to timestamp taps.
func WithClock(clock Clock) TapperOption {
	return func(cfg *TapperConfig) {
		if clock != nil {
			cfg.Clock = clock
		}
	}
}

// ApplyTapperOptions applies zero or more options to the default config.
func ApplyTapperOptions(opts ...TapperOption) TapperConfig {
	cfg := DefaultTapperConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
