package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != EnvDevelopment || cfg.Port != "5000" || cfg.DB.Path != "app.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.JWT.Expire != 30*24*time.Hour || cfg.JWT.CookieName != "token" {
		t.Fatalf("unexpected jwt defaults: %+v", cfg.JWT)
	}
	if cfg.Feed.Limit != 20 || cfg.Feed.Interval != time.Second {
		t.Fatalf("unexpected feed defaults: %+v", cfg.Feed)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := writeConfig(t, `
port: "8081"
log:
  level: warn
jwt:
  secret: from-file
  expire: 2h
server:
  write_timeout: 3s
`)
	t.Setenv("POSTBOARD_DB_PATH", "/tmp/override.db")
	t.Setenv("POSTBOARD_JWT_EXPIRE", "90m")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8081" || cfg.Log.Level != "warn" || cfg.JWT.Secret != "from-file" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.DB.Path != "/tmp/override.db" {
		t.Fatalf("env override for db.path not applied: %q", cfg.DB.Path)
	}
	if cfg.JWT.Expire != 90*time.Minute {
		t.Fatalf("env override for jwt.expire not applied: %s", cfg.JWT.Expire)
	}
	if cfg.Server.WriteTimeout != 3*time.Second || cfg.Server.IdleTimeout != 60*time.Second {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"unknown env", "env: staging\n", "invalid env"},
		{"default secret in production", "env: production\n", "must be changed in production"},
		{"empty secret", "jwt:\n  secret: \"\"\n", "jwt.secret must be set"},
		{"non-positive feed limit", "feed:\n  limit: 0\n", "feed.limit"},
		{"malformed yaml", "port: [\n", "read config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_ProductionWithRealSecret(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: production\njwt:\n  secret: s3cr3t\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production config")
	}
}
