package sift

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig(64, 64)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig(64, 64) should validate, got %v", err)
	}
}

func TestValidateRejectsUndersizedImage(t *testing.T) {
	cfg := DefaultConfig(8, 8)
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error for an 8x8 image, got nil")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
}

func TestValidateRejectsNonPositiveThreshold(t *testing.T) {
	cfg := DefaultConfig(64, 64)
	cfg.DoGThreshold = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a zero DoGThreshold, got nil")
	}
}
