package config

import (
	"strings"
	"testing"
	"time"
)

const secret = "0123456789abcdef0123456789abcdef"

func validConfig() Config {
	return Config{
		Port:               "8080",
		CORSAllowedOrigins: []string{"*"},
		ShutdownTimeout:    10 * time.Second,
		DBDriver:           "sqlite",
		SQLiteDBPath:       "./data/ledger.db",
		JWTSecret:          secret,
		JWTTTL:             24 * time.Hour,
		LogLevel:           "info",
		LogFormat:          "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid sqlite config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid postgres config",
			modify: func(c *Config) {
				c.DBDriver = "postgres"
				c.DatabaseURL = "postgres://ledger@localhost:5432/ledger"
			},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			modify:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			modify:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "unknown driver",
			modify:      func(c *Config) { c.DBDriver = "mysql" },
			wantErr:     true,
			errorString: "invalid database driver 'mysql'",
		},
		{
			name:        "postgres without url",
			modify:      func(c *Config) { c.DBDriver = "postgres" },
			wantErr:     true,
			errorString: "DATABASE_URL is required",
		},
		{
			name:        "short jwt secret",
			modify:      func(c *Config) { c.JWTSecret = "short" },
			wantErr:     true,
			errorString: "JWT_SECRET must be at least 32 bytes",
		},
		{
			name:        "bad log level",
			modify:      func(c *Config) { c.LogLevel = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "bad log format",
			modify:      func(c *Config) { c.LogFormat = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
		{
			name:        "no cors origins",
			modify:      func(c *Config) { c.CORSAllowedOrigins = nil },
			wantErr:     true,
			errorString: "CORS_ALLOWED_ORIGINS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.JWTSecret = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"invalid port", "JWT_SECRET"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got %q", want, err.Error())
		}
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/ledger")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CLAIM_DEMO_DATA", "true")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DSN() != "postgres://localhost/ledger" {
		t.Errorf("DSN() = %q", cfg.DSN())
	}
	if cfg.JWTTTL != 2*time.Hour {
		t.Errorf("JWTTTL = %v, want 2h", cfg.JWTTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.ClaimDemoData {
		t.Error("ClaimDemoData = false, want true")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want default 10s", cfg.ShutdownTimeout)
	}
}
