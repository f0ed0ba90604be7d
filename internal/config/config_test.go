package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	prof, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if *prof != *def {
		t.Errorf("got %+v, want default %+v", prof, def)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aurora.toml")
	content := "target = \"wasm32\"\nopt-level = 2\nemit-ll = true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test profile: %v", err)
	}

	prof, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prof.Target != "wasm32" {
		t.Errorf("Target = %q, want wasm32", prof.Target)
	}
	if prof.OptLevel != 2 {
		t.Errorf("OptLevel = %d, want 2", prof.OptLevel)
	}
	if !prof.EmitLL {
		t.Error("EmitLL = false, want true")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aurora.toml")
	if err := os.WriteFile(path, []byte("this is not valid toml = = ="), 0644); err != nil {
		t.Fatalf("failed to write test profile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for a malformed build profile")
	}
}
