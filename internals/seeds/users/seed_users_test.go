package users

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUserSeeds(t *testing.T) {
	seeds, err := LoadUserSeeds("data_users.json")
	if err != nil {
		t.Fatalf("LoadUserSeeds: %v", err)
	}
	if len(seeds) == 0 || seeds[0].Role != "admin" {
		t.Fatalf("seeds = %+v", seeds)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"bukan":"array"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadUserSeeds(bad); err == nil {
		t.Fatal("expected decode error")
	}
}
