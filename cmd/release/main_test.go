package main

import (
	"path/filepath"
	"testing"
)

func TestAddReleaseNumbersFromHighest(t *testing.T) {
	vf := VersionFile{Versions: []Version{{Version: 2}, {Version: 5}, {Version: 1}}}
	vf = addRelease(vf, "  fix orbs \n")
	if vf.Versions[0].Version != 6 {
		t.Fatalf("version = %d, want 6", vf.Versions[0].Version)
	}
	if vf.Versions[0].Changelog != "fix orbs" {
		t.Fatalf("changelog = %q", vf.Versions[0].Changelog)
	}
	if len(vf.Versions) != 4 {
		t.Fatalf("entries = %d", len(vf.Versions))
	}
}

func TestAddReleaseEmptyFile(t *testing.T) {
	vf := addRelease(VersionFile{}, "first")
	if vf.Versions[0].Version != 1 {
		t.Fatalf("version = %d, want 1", vf.Versions[0].Version)
	}
}

func TestVersionFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	in := addRelease(VersionFile{}, "first")
	if err := saveVersionFile(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := loadVersionFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out.Versions) != 1 || out.Versions[0].Changelog != "first" {
		t.Fatalf("unexpected %+v", out)
	}
}

// The embedded client file must stay readable by the tool.
func TestLoadClientVersions(t *testing.T) {
	vf, err := loadVersionFile(filepath.Join("..", "..", "data", "versions.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if nextVersion(vf) != 3 {
		t.Fatalf("next version = %d, want 3", nextVersion(vf))
	}
}
