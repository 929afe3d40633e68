package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Lint.Order) != 0 {
		t.Errorf("expected empty order (builtin default), got %v", cfg.Lint.Order)
	}
	if cfg.Lint.Alphabetize {
		t.Error("expected alphabetize off by default")
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("expected text output by default, got %s", cfg.Output.Format)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "json format",
			modify:  func(c *Config) { c.Output.Format = FormatJSON },
			wantErr: false,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "empty format",
			modify:  func(c *Config) { c.Output.Format = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{
		Lint: LintConfig{
			Order:       []string{"constructors", "public-methods"},
			Alphabetize: true,
			Exclude:     []string{"**/*.spec.ts"},
		},
		Output: OutputConfig{Format: FormatJSON},
	}

	base.Merge(other)

	if len(base.Lint.Order) != 2 {
		t.Errorf("expected merged order, got %v", base.Lint.Order)
	}
	if !base.Lint.Alphabetize {
		t.Error("expected alphabetize merged to true")
	}
	if len(base.Lint.Exclude) != 1 {
		t.Errorf("expected merged excludes, got %v", base.Lint.Exclude)
	}
	if base.Output.Format != FormatJSON {
		t.Errorf("expected json format after merge, got %s", base.Output.Format)
	}

	// Merging an empty config changes nothing.
	base.Merge(&Config{})
	if base.Output.Format != FormatJSON {
		t.Errorf("expected format preserved, got %s", base.Output.Format)
	}

	base.Merge(nil)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "memberlint.yaml")

	content := `lint:
  order:
    - public-fields
    - constructors
    - public-methods
  alphabetize: true
  exclude:
    - "**/*.spec.ts"
output:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if len(cfg.Lint.Order) != 3 || cfg.Lint.Order[1] != "constructors" {
		t.Errorf("unexpected order: %v", cfg.Lint.Order)
	}
	if !cfg.Lint.Alphabetize {
		t.Error("expected alphabetize true")
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected json format, got %s", cfg.Output.Format)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Lint.Alphabetize = true
	cfg.Lint.Order = []string{"inputs", "outputs", "constructors"}

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if !loaded.Lint.Alphabetize {
		t.Error("expected alphabetize preserved")
	}
	if len(loaded.Lint.Order) != 3 || loaded.Lint.Order[0] != "inputs" {
		t.Errorf("unexpected order: %v", loaded.Lint.Order)
	}
}
