package config

const (
	defaultToneFrequency = 1000.0
	defaultToneAmplitude = 0.3
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tone: Tone{
			Frequency: defaultToneFrequency,
			Amplitude: defaultToneAmplitude,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
