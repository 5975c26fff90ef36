package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"welcomeMail": map[string]any{
			"maxAttempts": 3,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "WELCOMEMAIL_MAXATTEMPTS", want: "welcomeMail.maxAttempts"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyWelcomeMailDefaults(t *testing.T) {
	cfg := &Config{}
	applyWelcomeMailDefaults(cfg)

	if cfg.WelcomeMail.MaxAttempts != 3 {
		t.Fatalf("MaxAttempts = %d, want 3", cfg.WelcomeMail.MaxAttempts)
	}
	if cfg.WelcomeMail.Timeout != 60*time.Second {
		t.Fatalf("Timeout = %s, want 60s", cfg.WelcomeMail.Timeout)
	}
	if cfg.WelcomeMail.SimulatedLatency != 2*time.Second {
		t.Fatalf("SimulatedLatency = %s, want 2s", cfg.WelcomeMail.SimulatedLatency)
	}

	// Explicit values are left untouched.
	cfg = &Config{WelcomeMail: &WelcomeMailConfig{MaxAttempts: 5, Timeout: time.Second}}
	applyWelcomeMailDefaults(cfg)
	if cfg.WelcomeMail.MaxAttempts != 5 || cfg.WelcomeMail.Timeout != time.Second {
		t.Fatalf("explicit welcomeMail values were overwritten: %+v", cfg.WelcomeMail)
	}
}
