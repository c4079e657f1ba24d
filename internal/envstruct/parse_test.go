package envstruct_test

import (
	"errors"
	"testing"

	"github.com/ahertta/readyday/internal/envstruct"
)

func TestPopulate(t *testing.T) {
	env := map[string]string{
		"READYDAY_ADDR": "localhost:9999",
	}
	lookupEnv := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	t.Run("set and default values", func(t *testing.T) {
		var cfg struct {
			Addr      string `env:"READYDAY_ADDR"      envDefault:"localhost:8080"`
			SqliteURL string `env:"READYDAY_SQLITE_URL" envDefault:":memory:"`
			Untagged  string
		}
		if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
			t.Fatalf("Populate() error = %v", err)
		}
		if got, want := cfg.Addr, "localhost:9999"; got != want {
			t.Errorf("Addr = %q, want %q", got, want)
		}
		if got, want := cfg.SqliteURL, ":memory:"; got != want {
			t.Errorf("SqliteURL = %q, want %q", got, want)
		}
		if cfg.Untagged != "" {
			t.Errorf("Untagged = %q, want empty", cfg.Untagged)
		}
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg struct {
			Required string `env:"READYDAY_NOT_SET"`
		}
		err := envstruct.Populate(&cfg, lookupEnv)
		if !errors.Is(err, envstruct.ErrEnvNotSet) {
			t.Errorf("Populate() error = %v, want ErrEnvNotSet", err)
		}
	})

	t.Run("non-struct input", func(t *testing.T) {
		var s string
		if err := envstruct.Populate(&s, lookupEnv); err == nil {
			t.Error("Populate() expected error for non-struct input")
		}
	})

	t.Run("unsupported field type", func(t *testing.T) {
		var cfg struct {
			Port int `env:"READYDAY_ADDR"`
		}
		if err := envstruct.Populate(&cfg, lookupEnv); err == nil {
			t.Error("Populate() expected error for non-string field")
		}
	})
}
