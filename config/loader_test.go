package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoaderLoad_DefaultsWhenNothingFound(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	cfg, err := NewLoader(nil).Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("expected default format, got %s", cfg.Output.Format)
	}
	if cfg.Lint.Alphabetize {
		t.Error("expected alphabetize off by default")
	}
}

func TestLoaderLoad_ProjectConfigDiscovery(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	content := `lint:
  alphabetize: true
`
	if err := os.WriteFile(filepath.Join(root, ProjectConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	// The loader walks parents, so a nested working directory finds it.
	nested := filepath.Join(root, "src", "app")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}
	chdir(t, nested)

	cfg, err := NewLoader(nil).Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Lint.Alphabetize {
		t.Error("expected project config to enable alphabetize")
	}
}

func TestLoaderLoad_ExplicitConfigWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	project := `output:
  format: text
`
	explicit := `output:
  format: json
`
	if err := os.WriteFile(filepath.Join(root, ProjectConfigFile), []byte(project), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}
	explicitPath := filepath.Join(root, "override.yaml")
	if err := os.WriteFile(explicitPath, []byte(explicit), 0644); err != nil {
		t.Fatalf("failed to write explicit config: %v", err)
	}
	chdir(t, root)

	cfg, err := NewLoader(nil).Load(explicitPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected explicit config to win, got %s", cfg.Output.Format)
	}
}

func TestLoaderLoad_MissingExplicitConfigFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	if _, err := NewLoader(nil).Load("/does/not/exist.yaml"); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestEnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	loader := NewLoader(nil)
	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig failed: %v", err)
	}

	path := filepath.Join(home, UserConfigDir, UserConfigFile)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected user config created at %s: %v", path, err)
	}

	// Second call is a no-op.
	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig second call failed: %v", err)
	}
}
