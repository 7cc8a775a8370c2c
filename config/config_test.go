package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file
	configContent := `
server:
  port: 9090
auth:
  jwt_secret: "test-secret"
  token_expire_hours: 48
log:
  level: "debug"
  format: "json"
store:
  max_contracts: 50
export:
  endpoint: "localhost:9000"
  access_key: "minioadmin"
  secret_key: "minioadmin"
  bucket: "test-bucket"
  use_ssl: false
  expire_days: 14
assistant:
  delay_ms: 250
users:
  - username: "testuser"
    password: "testpass"
    role: "Legal"
`
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(configContent); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Auth.TokenExpireHours != 48 {
		t.Errorf("Expected 48 expire hours, got %d", cfg.Auth.TokenExpireHours)
	}
	if cfg.Store.MaxContracts != 50 {
		t.Errorf("Expected max 50 contracts, got %d", cfg.Store.MaxContracts)
	}
	if cfg.Export.ExpireDays != 14 {
		t.Errorf("Expected 14 expire days, got %d", cfg.Export.ExpireDays)
	}
	if cfg.Assistant.DelayMs != 250 {
		t.Errorf("Expected delay 250ms, got %d", cfg.Assistant.DelayMs)
	}
	if len(cfg.Users) != 1 || cfg.Users[0].Role != "Legal" {
		t.Errorf("Unexpected users: %v", cfg.Users)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString("auth:\n  jwt_secret: x\n"); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.TokenExpireHours != 24 {
		t.Errorf("Expected default 24 expire hours, got %d", cfg.Auth.TokenExpireHours)
	}
	if cfg.Export.ExpireDays != 7 {
		t.Errorf("Expected default 7 expire days, got %d", cfg.Export.ExpireDays)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString("server: [not a map"); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	if _, err := Load(tmpFile.Name()); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestFindUser(t *testing.T) {
	cfg := &Config{
		Users: []User{
			{Username: "alice", Password: "a", Role: "Legal"},
			{Username: "bob", Password: "b", Role: "Finanzas"},
		},
	}

	user := cfg.FindUser("bob")
	if user == nil || user.Role != "Finanzas" {
		t.Errorf("Expected bob with role Finanzas, got %v", user)
	}

	if cfg.FindUser("carol") != nil {
		t.Error("Expected nil for unknown user")
	}
}
