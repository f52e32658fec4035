package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	path := filepath.Join(t.TempDir(), "sub", "data.json")
	want := payload{Name: "hooks", Count: 3}

	if err := SaveJSON(path, want); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}

	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file not cleaned up after rename")
	}

	var got payload
	if err := LoadJSON(path, &got); err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if got != want {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

func TestLoadJSON_Missing(t *testing.T) {
	t.Parallel()

	var dest map[string]string
	err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"), &dest)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestSaveJSON_Unmarshalable(t *testing.T) {
	t.Parallel()

	if err := SaveJSON(filepath.Join(t.TempDir(), "bad.json"), make(chan int)); err == nil {
		t.Error("expected marshal error")
	}
}

func TestMoveFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.py")
	dst := filepath.Join(dir, "tier1", "src.py")

	if err := os.WriteFile(src, []byte("content"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile failed: %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source still exists after move")
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q", data)
	}
}

func TestCopyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "hook.py")
	dst := filepath.Join(dir, "installed", "hook.py")

	if err := os.WriteFile(src, []byte("#!/usr/bin/env python3"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	// Source survives a copy.
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source gone after copy: %v", err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "nope.py"), filepath.Join(dir, "out.py"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
