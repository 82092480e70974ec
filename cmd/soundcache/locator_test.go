package soundcache

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not really audio"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDirLocatorLocate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sounds", "sound_1.mp3"))
	writeFile(t, filepath.Join(root, "sound_2.mp3"))

	loc := DirLocator{Root: root}

	tests := []struct {
		name    string
		sound   string
		subdir  string
		want    string
		wantHit bool
	}{
		{"in subdirectory", "sound_1", "sounds", filepath.Join(root, "sounds", "sound_1.mp3"), true},
		{"not in root", "sound_1", "", "", false},
		{"in root", "sound_2", "", filepath.Join(root, "sound_2.mp3"), true},
		{"not in subdirectory", "sound_2", "sounds", "", false},
		{"missing everywhere", "sound_3", "sounds", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, hit := loc.Locate(tc.sound, "mp3", tc.subdir)
			if hit != tc.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tc.wantHit)
			}
			if got != tc.want {
				t.Errorf("location = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDirLocatorExists(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sounds", "sound_1.mp3"))

	loc := DirLocator{Root: root}

	if !loc.Exists(filepath.Join("sounds", "sound_1.mp3")) {
		t.Error("relative path under root should exist")
	}
	if !loc.Exists(filepath.Join(root, "sounds", "sound_1.mp3")) {
		t.Error("absolute path should exist")
	}
	if loc.Exists("sounds") {
		t.Error("directories must not count as sound files")
	}
	if loc.Exists(filepath.Join("sounds", "sound_9.mp3")) {
		t.Error("missing file reported as existing")
	}
}

func TestCacheWithDirLocator(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sounds", "sound_1.mp3"))
	writeFile(t, filepath.Join(root, "sound_2.mp3"))

	cache := New(DirLocator{Root: root}, NopAudio{}, Config{})
	cache.LoadAll(3)

	if location, _ := cache.Location(1); location != filepath.Join(root, "sounds", "sound_1.mp3") {
		t.Errorf("pad 1 resolved to %q", location)
	}
	if location, _ := cache.Location(2); location != filepath.Join(root, "sound_2.mp3") {
		t.Errorf("pad 2 resolved to %q", location)
	}
	if cache.Loaded(3) {
		t.Error("pad 3 has no file and must stay unloaded")
	}
}
