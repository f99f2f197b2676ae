package config

import (
	"errors"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateProcessing(); err != nil {
		return err
	}
	if err := c.validateTone(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateProcessing() error {
	if c.Processing.Workers < 0 {
		return errors.New("processing.workers must be >= 0 (zero means one per CPU)")
	}
	return nil
}

func (c *Config) validateTone() error {
	if c.Tone.Frequency <= 0 {
		return errors.New("tone.frequency must be positive")
	}
	if c.Tone.Amplitude <= 0 || c.Tone.Amplitude > 1 {
		return errors.New("tone.amplitude must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
