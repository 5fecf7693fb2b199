package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	logxi "github.com/mgutz/logxi/v1"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "tween.toml", `
[demo]
curve = "overshoot3"
duration = "2s"
rest = "250ms"
sound = true

[server]
addr = "127.0.0.1:9000"
allow_origins = ["http://localhost:3000"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected TOML to load, got %v", err)
	}
	if cfg.Demo.Curve != "overshoot3" {
		t.Errorf("Expected curve overshoot3, got %q", cfg.Demo.Curve)
	}
	if cfg.Demo.Duration.Duration != 2*time.Second || cfg.Demo.Rest.Duration != 250*time.Millisecond {
		t.Errorf("Expected 2s/250ms, got %v/%v", cfg.Demo.Duration, cfg.Demo.Rest)
	}
	if !cfg.Demo.Sound {
		t.Error("Expected sound enabled")
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || len(cfg.Server.AllowOrigins) != 1 {
		t.Errorf("Unexpected server section: %+v", cfg.Server)
	}
	// Keys absent from the file keep their defaults
	if cfg.Demo.FPS != 60 || cfg.Log.Level != "info" {
		t.Errorf("Expected defaults for missing keys, got fps=%d level=%q", cfg.Demo.FPS, cfg.Log.Level)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"tween.yaml", "tween.yml"} {
		path := writeFile(t, name, `
demo:
  curve: shake
  duration: 500ms
  fps: 30
log:
  level: debug
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("%s: expected YAML to load, got %v", name, err)
		}
		if cfg.Demo.Curve != "shake" || cfg.Demo.Duration.Duration != 500*time.Millisecond || cfg.Demo.FPS != 30 {
			t.Errorf("%s: unexpected demo section %+v", name, cfg.Demo)
		}
		if cfg.Log.LogxiLevel() != logxi.LevelDebug {
			t.Errorf("%s: expected debug level, got %d", name, cfg.Log.LogxiLevel())
		}
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("Expected empty YAML to yield defaults, got %v", err)
	}
	if cfg.Demo.Curve != Default().Demo.Curve {
		t.Errorf("Expected default curve, got %q", cfg.Demo.Curve)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"unknown extension", "tween.json", `{}`, "unsupported config format"},
		{"unknown toml key", "a.toml", "[demo]\ncurv = \"ease\"\n", "failed to parse"},
		{"unknown yaml key", "a.yaml", "demo:\n  curv: ease\n", "failed to parse"},
		{"bad duration", "a.toml", "[demo]\nduration = \"soon\"\n", "failed to parse"},
		{"unknown curve", "a.toml", "[demo]\ncurve = \"wobble\"\n", "unknown curve"},
		{"negative rest", "a.yaml", "demo:\n  rest: -1s\n", "demo.rest"},
		{"bad fps", "a.toml", "[demo]\nfps = 0\n", "demo.fps"},
		{"bad level", "a.toml", "[log]\nlevel = \"loud\"\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Demo.Curve = "strong-ease-out"
	cfg.Demo.Duration = D(3 * time.Second)
	cfg.Server.AllowOrigins = []string{"https://a.example", "https://b.example"}
	cfg.Log.Debug = true

	for _, name := range []string{"out.toml", "out.yaml"} {
		path := filepath.Join(t.TempDir(), "nested", name)
		if err := Save(cfg, path); err != nil {
			t.Fatalf("%s: save failed: %v", name, err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load failed: %v", name, err)
		}
		if loaded.Demo.Curve != cfg.Demo.Curve || loaded.Demo.Duration != cfg.Demo.Duration {
			t.Errorf("%s: expected demo %+v, got %+v", name, cfg.Demo, loaded.Demo)
		}
		if len(loaded.Server.AllowOrigins) != 2 || loaded.Server.AllowOrigins[1] != "https://b.example" {
			t.Errorf("%s: expected origins preserved, got %v", name, loaded.Server.AllowOrigins)
		}
		if !loaded.Log.Debug {
			t.Errorf("%s: expected debug preserved", name)
		}
	}
}

func TestLoadAuto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadAuto("")
	if err != nil || cfg.Demo.Curve != "ease" {
		t.Fatalf("Expected defaults without a config file, got %+v, %v", cfg, err)
	}

	custom := Default()
	custom.Demo.Curve = "linear"
	if err := Save(custom, DefaultConfigPath); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadAuto("")
	if err != nil || cfg.Demo.Curve != "linear" {
		t.Errorf("Expected default path to be loaded, got %+v, %v", cfg, err)
	}
}

func TestLogxiLevel(t *testing.T) {
	tests := []struct {
		cfg  LogConfig
		want int
	}{
		{LogConfig{Level: "warn"}, logxi.LevelWarn},
		{LogConfig{Level: "ERROR"}, logxi.LevelError},
		{LogConfig{Level: "warn", Debug: true}, logxi.LevelDebug},
		{LogConfig{Level: "bogus"}, logxi.LevelInfo},
	}
	for _, tt := range tests {
		if got := tt.cfg.LogxiLevel(); got != tt.want {
			t.Errorf("%+v: expected %d, got %d", tt.cfg, tt.want, got)
		}
	}
}

func TestDemoDurationsAscending(t *testing.T) {
	for i := 1; i < len(DemoDurations); i++ {
		if DemoDurations[i] <= DemoDurations[i-1] {
			t.Errorf("Expected ascending durations at %d", i)
		}
	}
}
