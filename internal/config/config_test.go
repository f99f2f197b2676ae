package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"batchcensor/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(tempHome); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Setenv("PWD", tempHome)
	t.Cleanup(func() {
		if err := os.Chdir(origWD); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected settings file to be absent in temp HOME")
	}

	if cfg.Paths.Root != "" || cfg.Paths.Output != "" || cfg.Paths.ConfigDir != "" {
		t.Fatalf("expected empty path defaults, got %+v", cfg.Paths)
	}
	if cfg.Processing.Workers != 0 {
		t.Fatalf("unexpected default workers: %d", cfg.Processing.Workers)
	}
	if cfg.Tone.Frequency != 1000 || cfg.Tone.Amplitude != 0.3 {
		t.Fatalf("unexpected tone defaults: %+v", cfg.Tone)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "batchcensor.toml")

	type payload struct {
		Paths struct {
			Root   string `toml:"root"`
			Output string `toml:"output"`
		} `toml:"paths"`
		Processing struct {
			Workers int `toml:"workers"`
		} `toml:"processing"`
		Tone struct {
			Frequency float64 `toml:"frequency"`
		} `toml:"tone"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.Root = "~/audio"
	custom.Paths.Output = filepath.Join(tempDir, "out")
	custom.Processing.Workers = 3
	custom.Tone.Frequency = 440
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "DEBUG"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom settings: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom settings: %v", err)
	}

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.Root != filepath.Join(tempHome, "audio") {
		t.Fatalf("expected tilde expansion, got %q", cfg.Paths.Root)
	}
	if cfg.Paths.Output != filepath.Join(tempDir, "out") {
		t.Fatalf("unexpected output: %q", cfg.Paths.Output)
	}
	if cfg.Processing.Workers != 3 {
		t.Fatalf("expected 3 workers, got %d", cfg.Processing.Workers)
	}
	if cfg.Tone.Frequency != 440 {
		t.Fatalf("expected tone frequency 440, got %v", cfg.Tone.Frequency)
	}
	if cfg.Tone.Amplitude != 0.3 {
		t.Fatalf("expected default amplitude to survive override, got %v", cfg.Tone.Amplitude)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected canonical json format, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected canonical debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false")
	}
	if resolved != missing {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Tone.Frequency != 1000 {
		t.Fatalf("expected defaults, got %+v", cfg.Tone)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[tone]") {
		t.Fatalf("sample settings missing tone section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Tone.Frequency != 1000 {
		t.Fatalf("sample tone frequency = %v, want default", cfg.Tone.Frequency)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Processing.Workers = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative workers")
	}

	cfg = config.Default()
	cfg.Tone.Frequency = -20
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative tone frequency")
	}

	cfg = config.Default()
	cfg.Tone.Amplitude = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for amplitude above 1")
	}

	cfg = config.Default()
	cfg.Logging.Level = "chatty"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
