package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want :8080", cfg.Addr())
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("AllowedOrigin = %q, want *", cfg.AllowedOrigin)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Errorf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 10<<20)
	}
	if cfg.OCRTimeout != 30*time.Second {
		t.Errorf("OCRTimeout = %v, want 30s", cfg.OCRTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGIN", "https://app.example.com")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("OCR_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.AllowedOrigin != "https://app.example.com" {
		t.Errorf("AllowedOrigin = %q, want https://app.example.com", cfg.AllowedOrigin)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Errorf("MaxUploadBytes = %d, want 1048576", cfg.MaxUploadBytes)
	}
	if cfg.OCRTimeout != 5*time.Second {
		t.Errorf("OCRTimeout = %v, want 5s", cfg.OCRTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout)
	}
}

func TestLoadUnparseableValuesFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	t.Setenv("OCR_TIMEOUT", "soon")

	cfg := Load()

	if cfg.MaxUploadBytes != 10<<20 {
		t.Errorf("MaxUploadBytes = %d, want default %d", cfg.MaxUploadBytes, 10<<20)
	}
	if cfg.OCRTimeout != 30*time.Second {
		t.Errorf("OCRTimeout = %v, want default 30s", cfg.OCRTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantPart string
	}{
		{
			name:     "non-numeric port",
			mutate:   func(c *Config) { c.Port = "http" },
			wantPart: "invalid port",
		},
		{
			name:     "port out of range",
			mutate:   func(c *Config) { c.Port = "70000" },
			wantPart: "invalid port",
		},
		{
			name:     "empty allowed origin",
			mutate:   func(c *Config) { c.AllowedOrigin = "" },
			wantPart: "allowed origin",
		},
		{
			name:     "non-positive upload cap",
			mutate:   func(c *Config) { c.MaxUploadBytes = 0 },
			wantPart: "max upload bytes",
		},
		{
			name:     "ocr timeout too short",
			mutate:   func(c *Config) { c.OCRTimeout = 10 * time.Millisecond },
			wantPart: "OCR timeout",
		},
		{
			name:     "shutdown timeout too short",
			mutate:   func(c *Config) { c.ShutdownTimeout = 0 },
			wantPart: "shutdown timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.wantPart)
			}
		})
	}
}
