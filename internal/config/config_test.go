package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_MODEL", "")
	t.Setenv("LANGFUSE_HOST", "")
	t.Setenv("LANGFUSE_ENABLED", "")

	cfg := Load()

	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DefaultModel != "gemini-2.5-flash" {
		t.Errorf("DefaultModel = %q, want gemini-2.5-flash", cfg.DefaultModel)
	}
	if cfg.LangfuseHost != "https://cloud.langfuse.com" {
		t.Errorf("LangfuseHost = %q, want cloud default", cfg.LangfuseHost)
	}
	if cfg.LangfuseEnabled {
		t.Error("LangfuseEnabled should default to false")
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() should be false for development")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9999")
	t.Setenv("GEMINI_API_KEY", "test-gemini-key")
	t.Setenv("DEFAULT_MODEL", "gemini-2.5-pro")
	t.Setenv("LANGFUSE_ENABLED", "true")

	cfg := Load()

	if !cfg.IsProduction() {
		t.Error("IsProduction() should be true for production")
	}
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.GeminiAPIKey != "test-gemini-key" {
		t.Errorf("GeminiAPIKey = %q, want test-gemini-key", cfg.GeminiAPIKey)
	}
	if cfg.DefaultModel != "gemini-2.5-pro" {
		t.Errorf("DefaultModel = %q, want gemini-2.5-pro", cfg.DefaultModel)
	}
	if !cfg.LangfuseEnabled {
		t.Error("LangfuseEnabled should be true")
	}
}
