package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TAX_RATE_PERCENT", "")
	t.Setenv("DEFAULT_MIN_STOCK", "")
	t.Setenv("DASHBOARD_TTL_SECONDS", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TaxRatePercent != 10 {
		t.Fatalf("expected default tax rate 10, got %v", cfg.TaxRatePercent)
	}
	if cfg.DefaultMinStock != 10 {
		t.Fatalf("expected default min stock 10, got %d", cfg.DefaultMinStock)
	}
	if cfg.Address() != ":8080" {
		t.Fatalf("expected address :8080, got %q", cfg.Address())
	}
}

func TestLoadRejectsOutOfRangeTaxRate(t *testing.T) {
	t.Setenv("TAX_RATE_PERCENT", "250")

	cfg := Load()
	if cfg.TaxRatePercent != 10 {
		t.Fatalf("expected out-of-range tax rate to fall back to 10, got %v", cfg.TaxRatePercent)
	}
}
