package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:         ":8080",
		DatabaseURL:  "postgres://localhost/sanrise",
		Environment:  "development",
		MaxBodyBytes: 1048576,
		SessionTTL:   24 * time.Hour,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid development config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing database url",
			mutate:  func(c *Config) { c.DatabaseURL = "" },
			wantErr: true,
		},
		{
			name: "production requires jwt secret",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.JWTSecret = ""
			},
			wantErr: true,
		},
		{
			name: "production with secret and seed password",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.JWTSecret = "secret"
				c.RunSeed = true
				c.SeedAdminPassword = "ChangeMe123"
			},
		},
		{
			name:    "body limit too small",
			mutate:  func(c *Config) { c.MaxBodyBytes = 512 },
			wantErr: true,
		},
		{
			name:    "session ttl too short",
			mutate:  func(c *Config) { c.SessionTTL = time.Second },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
