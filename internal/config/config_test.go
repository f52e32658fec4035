package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLocal(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns nil", func(t *testing.T) {
		t.Parallel()
		local, err := LoadLocal(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if local != nil {
			t.Errorf("expected nil config, got %+v", local)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		content := `
hooks_dir = "/opt/hooks"
project_type = "python"

[select]
minimal = true
exclude = ["notification.py"]
min_importance = "important"
`
		if err := os.WriteFile(filepath.Join(dir, LocalConfigFileName), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		local, err := LoadLocal(dir)
		if err != nil {
			t.Fatalf("LoadLocal failed: %v", err)
		}
		if local.HooksDir != "/opt/hooks" {
			t.Errorf("hooks_dir = %q", local.HooksDir)
		}
		if local.ProjectType != "python" {
			t.Errorf("project_type = %q", local.ProjectType)
		}
		if !local.Select.Minimal || local.Select.MinImportance != "important" {
			t.Errorf("select = %+v", local.Select)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, LocalConfigFileName), []byte("[[[nope"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadLocal(dir); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid min_importance", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		content := "[select]\nmin_importance = \"severe\"\n"
		if err := os.WriteFile(filepath.Join(dir, LocalConfigFileName), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadLocal(dir); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("invalid project_type", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		content := "project_type = \"cobol\"\n"
		if err := os.WriteFile(filepath.Join(dir, LocalConfigFileName), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadLocal(dir); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestMergeLocal(t *testing.T) {
	t.Parallel()

	global := Default()
	global.HooksDir = "/global/hooks"
	global.Select.Exclude = []string{"a.py"}

	t.Run("nil local keeps global", func(t *testing.T) {
		t.Parallel()
		merged := MergeLocal(global, nil)
		if merged.HooksDir != "/global/hooks" {
			t.Errorf("hooks_dir = %q", merged.HooksDir)
		}
		if merged.InstallDir != DefaultInstallDir {
			t.Errorf("install_dir = %q", merged.InstallDir)
		}
	})

	t.Run("local overrides set fields", func(t *testing.T) {
		t.Parallel()
		local := &Config{ProjectType: "react", InstallDir: "hooks"}
		merged := MergeLocal(global, local)

		if merged.ProjectType != "react" {
			t.Errorf("project_type = %q", merged.ProjectType)
		}
		if merged.InstallDir != "hooks" {
			t.Errorf("install_dir = %q", merged.InstallDir)
		}
		// Unset local fields inherit from global.
		if merged.HooksDir != "/global/hooks" {
			t.Errorf("hooks_dir = %q", merged.HooksDir)
		}
		if len(merged.Select.Exclude) != 1 {
			t.Errorf("select should inherit, got %+v", merged.Select)
		}
	})

	t.Run("local select replaces wholesale", func(t *testing.T) {
		t.Parallel()
		local := &Config{Select: SelectConfig{Minimal: true}}
		merged := MergeLocal(global, local)

		if !merged.Select.Minimal {
			t.Error("minimal not taken from local")
		}
		if len(merged.Select.Exclude) != 0 {
			t.Errorf("global exclude should not leak into local select: %+v", merged.Select.Exclude)
		}
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.InstallDir != ".claude/hooks" {
		t.Errorf("default install_dir = %q", cfg.InstallDir)
	}
	if cfg.HooksDir != "" || cfg.ProjectType != "" {
		t.Errorf("defaults should leave paths unset: %+v", cfg)
	}
}
