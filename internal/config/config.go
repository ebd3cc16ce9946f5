// Package config handles converter configuration loading and management.
package config

// Config holds all converter settings.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Sampling SamplingConfig `yaml:"sampling"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OutputConfig holds output image settings.
type OutputConfig struct {
	// Path overrides the default {prefix}_spheremap.bmp output name.
	Path string `yaml:"path"`
}

// SamplingConfig holds texel sampling settings.
type SamplingConfig struct {
	// ClampLow clamps negative nearest-neighbor indices to zero.
	// Disable for bit-exact output against renderers that clamp the
	// upper bound only.
	ClampLow bool `yaml:"clamp_low"`
}

// RenderConfig holds pixel-loop settings.
type RenderConfig struct {
	// Workers is the number of render goroutines. 0 means one per CPU,
	// 1 forces the sequential path.
	Workers int `yaml:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path: "",
		},
		Sampling: SamplingConfig{
			ClampLow: true,
		},
		Render: RenderConfig{
			Workers: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
