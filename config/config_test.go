package config_test

import (
	"os"
	"testing"

	qt "github.com/frankban/quicktest"

	"cartera-web/config"
)

func TestLoadDefaults(t *testing.T) {
	c := qt.New(t)
	for _, k := range []string{"DATABASE_PATH", "SESSION_SECRET", "PORT"} {
		t.Setenv(k, "") // register restore
		os.Unsetenv(k)
	}

	cfg := config.Load()
	c.Assert(cfg.DatabasePath, qt.Equals, "cartera.db")
	c.Assert(cfg.SessionSecret, qt.Equals, "admin1234")
	c.Assert(cfg.Port, qt.Equals, "5000")
}

func TestLoadFromEnvironment(t *testing.T) {
	c := qt.New(t)
	t.Setenv("DATABASE_PATH", "/tmp/otra.db")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("PORT", "8081")

	cfg := config.Load()
	c.Assert(cfg.DatabasePath, qt.Equals, "/tmp/otra.db")
	c.Assert(cfg.SessionSecret, qt.Equals, "s3cret")
	c.Assert(cfg.Port, qt.Equals, "8081")
}
