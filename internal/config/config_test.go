package config

import "testing"

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Forecast.HorizonDays = 60
	cfg.Forecast.Model = "boost"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file not on disk after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Forecast.HorizonDays != 60 {
		t.Errorf("HorizonDays = %d, want 60", loaded.Forecast.HorizonDays)
	}
	if loaded.Forecast.Model != "boost" {
		t.Errorf("Model = %q, want boost", loaded.Forecast.Model)
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Forecast.HorizonDays != 90 {
		t.Errorf("HorizonDays = %d, want 90", cfg.Forecast.HorizonDays)
	}
	if cfg.Forecast.Model != "seasonal" {
		t.Errorf("Model = %q, want seasonal", cfg.Forecast.Model)
	}
	if cfg.Budget.MonthlyIncome != 5000 {
		t.Errorf("MonthlyIncome = %v, want 5000", cfg.Budget.MonthlyIncome)
	}
	if cfg.Budget.SavingsTargetPct != 0.2 {
		t.Errorf("SavingsTargetPct = %v, want 0.2", cfg.Budget.SavingsTargetPct)
	}
}

func TestValidate_Ranges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"horizon too short", func(c *Config) { c.Forecast.HorizonDays = 7 }},
		{"horizon too long", func(c *Config) { c.Forecast.HorizonDays = 1000 }},
		{"unknown model", func(c *Config) { c.Forecast.Model = "prophet" }},
		{"negative income", func(c *Config) { c.Budget.MonthlyIncome = -1 }},
		{"savings above cap", func(c *Config) { c.Budget.SavingsTargetPct = 0.9 }},
		{"negative savings", func(c *Config) { c.Budget.SavingsTargetPct = -0.1 }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidate_BoundaryValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Forecast.HorizonDays = 30
	cfg.Budget.SavingsTargetPct = 0.8
	cfg.Budget.MonthlyIncome = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("boundary values should validate: %v", err)
	}

	cfg.Forecast.HorizonDays = 365
	if err := cfg.Validate(); err != nil {
		t.Errorf("horizon 365 should validate: %v", err)
	}
}
