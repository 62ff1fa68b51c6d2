package wrangle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "wrangle.yaml")
	body := "years: [2023]\nout_dir: out\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Years) != 1 || cfg.Years[0] != 2023 || cfg.OutDir != "out" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RateStandard != "2001" {
		t.Fatalf("rate standard default = %q", cfg.RateStandard)
	}
	if len(cfg.Packages) != 8 {
		t.Fatalf("expected default package slugs for all capitals, got %d", len(cfg.Packages))
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	bad := DefaultConfig()
	bad.Years = nil
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for empty years")
	}
	bad = DefaultConfig()
	bad.RateStandard = "1998"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for unknown rate standard")
	}
	bad = DefaultConfig()
	bad.Packages = map[string]string{"Auckland": "x"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for unknown capital")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestCityFileLabel(t *testing.T) {
	if got := CityFileLabel("Hobart"); got != "Kingston" {
		t.Fatalf("Hobart label = %q, want Kingston", got)
	}
	if got := CityFileLabel("Perth"); got != "Perth" {
		t.Fatalf("Perth label = %q", got)
	}
}

func TestCapitalStatesMatchNameMapping(t *testing.T) {
	for city, ref := range CapitalStates {
		code, ok := StateCodeByName[ref.Name]
		if !ok || code != ref.Code {
			t.Fatalf("capital %s maps to %s/%s but name table says %q", city, ref.Code, ref.Name, code)
		}
	}
}
