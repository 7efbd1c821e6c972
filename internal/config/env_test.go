// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"
)

func TestParseEnv_PopulatesStructuredConfig(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "production")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "super-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "idea-vault")
	t.Setenv("AUTH_TOKEN_DURATION", "2h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/ideavault")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")

	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Environment != "production" {
		t.Errorf("expected environment production, got %q", cfg.App.Environment)
	}
	if cfg.Auth.TokenSignKey != "super-secret" {
		t.Errorf("expected sign key to be read from env, got %q", cfg.Auth.TokenSignKey)
	}
	if cfg.Auth.TokenDuration != 2*time.Hour {
		t.Errorf("expected token duration 2h, got %s", cfg.Auth.TokenDuration)
	}
	if cfg.Storage.DB.DSN != "postgres://localhost:5432/ideavault" {
		t.Errorf("unexpected DSN: %q", cfg.Storage.DB.DSN)
	}
	if cfg.Server.HTTPAddress != "0.0.0.0:9090" {
		t.Errorf("unexpected HTTP address: %q", cfg.Server.HTTPAddress)
	}
	if cfg.Server.RequestTimeout != 45*time.Second {
		t.Errorf("unexpected request timeout: %s", cfg.Server.RequestTimeout)
	}
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Auth.TokenSignKey != "" || cfg.Storage.DB.DSN != "" {
		t.Error("expected zero values when no env variables are set")
	}
}
