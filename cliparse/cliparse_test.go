// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("TIMEZONE", "Europe/Madrid")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreType != StorePostgres {
		t.Errorf("expected store postgres, got %s", cfg.StoreType)
	}
	if cfg.Timezone != "Europe/Madrid" {
		t.Errorf("expected timezone Europe/Madrid, got %s", cfg.Timezone)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_TYPE", "redis")

	cfg, err := ParseFlags([]string{"-p", "8081", "-store", "sqlite", "-d", "file:test.db", "-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreSQLite {
		t.Errorf("CLI should override env: expected sqlite, got %s", cfg.StoreType)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected database file:test.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.StoreType != StoreSQLite || cfg.DatabaseURL != DefaultSQLitePath {
		t.Errorf("expected sqlite at %s, got %s at %s", DefaultSQLitePath, cfg.StoreType, cfg.DatabaseURL)
	}
	if cfg.Timezone != DefaultTimezone {
		t.Errorf("expected timezone %s, got %s", DefaultTimezone, cfg.Timezone)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("STORE_TYPE=memory\nLOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets process env; clear what it loaded when the test ends
	t.Setenv("STORE_TYPE", "")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("STORE_TYPE")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.StoreType != StoreMemory {
		t.Errorf("expected store from env file, got %s", cfg.StoreType)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level from env file, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"postgres without url", []string{"-store", "postgres"}},
		{"unknown store", []string{"-store", "mongo"}},
		{"bad timezone", []string{"-store", "memory", "-tz", "Mars/Olympus"}},
		{"bad log level", []string{"-store", "memory", "-log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			args := append(tt.args, "-env-file", "")
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
