package config

import (
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.CurrencySymbol != "£" {
		t.Errorf("CurrencySymbol = %q, want £", cfg.General.CurrencySymbol)
	}
	if cfg.Simulation.MaxMonths != 600 {
		t.Errorf("MaxMonths = %d, want 600", cfg.Simulation.MaxMonths)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.CurrencySymbol = "$"
	cfg.Simulation.ExtraMonthly = 250
	cfg.Simulation.MaxMonths = 120

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.CurrencySymbol != "$" {
		t.Errorf("CurrencySymbol = %q, want $", got.General.CurrencySymbol)
	}
	if got.Simulation.ExtraMonthly != 250 {
		t.Errorf("ExtraMonthly = %.2f, want 250", got.Simulation.ExtraMonthly)
	}
	if got.Simulation.MaxMonths != 120 {
		t.Errorf("MaxMonths = %d, want 120", got.Simulation.MaxMonths)
	}
}

func TestLoad_ZeroMaxMonthsFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Simulation.MaxMonths = 0
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Simulation.MaxMonths != 600 {
		t.Errorf("MaxMonths = %d, want fallback 600", got.Simulation.MaxMonths)
	}
}
