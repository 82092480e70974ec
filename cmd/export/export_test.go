package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sounds"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := []byte("pretend mp3 bytes")
	if err := os.WriteFile(filepath.Join(dir, "sounds", "sound_2.mp3"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	dest, err := runExport(&Params{Pad: 2, Out: out, Dir: dir, Ext: "mp3"})
	if err != nil {
		t.Fatalf("runExport failed: %v", err)
	}

	if dest != filepath.Join(out, "sound_2.mp3") {
		t.Errorf("unexpected destination %q", dest)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("exported content %q != source %q", got, content)
	}
}

func TestRunExportExplicitFileName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sound_1.mp3"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(t.TempDir(), "ringtone.mp3")
	dest, err := runExport(&Params{Pad: 1, Out: target, Dir: dir, Ext: "mp3"})
	if err != nil {
		t.Fatalf("runExport failed: %v", err)
	}
	if dest != target {
		t.Errorf("destination %q, want %q", dest, target)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("expected exported file at %q: %v", target, err)
	}
}

func TestRunExportMissingPad(t *testing.T) {
	if _, err := runExport(&Params{Pad: 7, Out: t.TempDir(), Dir: t.TempDir(), Ext: "mp3"}); err == nil {
		t.Fatal("expected error for a pad with no sound file")
	}
}
