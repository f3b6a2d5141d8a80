package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.toml")
	data := "[bench]\niters = 42\npayload = 64\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	def := benchProfile{Iters: 1000, Payload: 1024, Readers: 4}
	got, err := loadProfile(path, def)
	if err != nil {
		t.Fatal(err)
	}
	if got.Iters != 42 || got.Payload != 64 {
		t.Fatalf("profile not applied: %+v", got)
	}
	if got.Readers != 4 {
		t.Fatalf("absent key must keep the default, got %d", got.Readers)
	}
}

func TestLoadProfileWithoutBenchSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.toml")
	if err := os.WriteFile(path, []byte("# nothing here\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	def := benchProfile{Iters: 7, Payload: 8, Readers: 1}
	got, err := loadProfile(path, def)
	if err != nil {
		t.Fatal(err)
	}
	if got != def {
		t.Fatalf("defaults must survive an empty profile: %+v", got)
	}
}

func TestLoadProfileBadFile(t *testing.T) {
	if _, err := loadProfile(filepath.Join(t.TempDir(), "missing.toml"), benchProfile{}); err == nil {
		t.Fatal("expected an error for a missing profile")
	}
}
