package config

// DefaultDebounceMillis is the default quiet period before a changed file is re-extracted.
const DefaultDebounceMillis = 400

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Watch.DebounceMillis <= 0 {
		cfg.Watch.DebounceMillis = DefaultDebounceMillis
	}
}
