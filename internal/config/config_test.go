package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
				ExportDir:    "./exports",
				LogLevel:     "info",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend: "memory",
				ExportDir:   "./exports",
				LogLevel:    "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid backend",
			config: Config{
				DataBackend: "postgres",
				ExportDir:   "./exports",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
		{
			name: "sqlite backend without db path",
			config: Config{
				DataBackend: "sqlite",
				ExportDir:   "./exports",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "empty export dir",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "export directory cannot be empty",
		},
		{
			name: "invalid log level",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
				ExportDir:    "./exports",
				LogLevel:     "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Keep db paths inside the test's temp dir so Validate's
			// directory creation never touches the working tree.
			if tt.config.SQLiteDBPath != "" {
				tt.config.SQLiteDBPath = filepath.Join(t.TempDir(), tt.config.SQLiteDBPath)
			}

			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not mention %q", err, tt.errorString)
				}
			} else if err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DataBackend != "sqlite" {
		t.Fatalf("default backend = %q, want sqlite", cfg.DataBackend)
	}
	if cfg.PersistPlatforms {
		t.Fatal("platform persistence must default to off")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("PERSIST_PLATFORMS", "true")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := Load()
	if cfg.DataBackend != "memory" {
		t.Fatalf("backend = %q, want memory", cfg.DataBackend)
	}
	if !cfg.PersistPlatforms {
		t.Fatal("PERSIST_PLATFORMS=true must enable platform persistence")
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		t.Fatalf("slog level: %v", err)
	}
	if level != slog.LevelWarn {
		t.Fatalf("level = %v, want warn", level)
	}
}
