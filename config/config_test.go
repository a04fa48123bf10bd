package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "redis enabled without addr",
			config: Config{
				Redis: RedisConfig{Enabled: true},
			},
			wantErr: true,
		},
		{
			name: "negative redis db",
			config: Config{
				Redis: RedisConfig{Addr: "127.0.0.1:6379", DB: -1},
			},
			wantErr: true,
		},
		{
			name: "negative session ttl",
			config: Config{
				Game: GameConfig{SessionTTL: -time.Second},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":8000")
	}
	if cfg.Game.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want %v", cfg.Game.SessionTTL, 30*time.Minute)
	}
	if cfg.Game.MaxSolutions != 5 || cfg.Game.PreviewSolutions != 3 || cfg.Game.MaxAttempts != 100 {
		t.Errorf("unexpected game defaults: %+v", cfg.Game)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "info")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9000"

redis:
  enabled: true
  addr: "redis:6379"
  db: 2

logging:
  level: "debug"

game:
  session_ttl: "5m"
  max_solutions: 8
  exhaustive_shapes: true
  strict_verify: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":9000")
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Game.SessionTTL != 5*time.Minute {
		t.Errorf("SessionTTL = %v, want %v", cfg.Game.SessionTTL, 5*time.Minute)
	}
	if cfg.Game.MaxSolutions != 8 || !cfg.Game.ExhaustiveShapes || !cfg.Game.StrictVerify {
		t.Errorf("unexpected game config: %+v", cfg.Game)
	}
	if cfg.Game.PreviewSolutions != 3 {
		t.Errorf("PreviewSolutions = %v, want default 3", cfg.Game.PreviewSolutions)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for malformed yaml")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":8000")
	}
}
