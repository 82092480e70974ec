package common

import (
	"path/filepath"
	"testing"
)

func TestSoundsDirHonorsXDGDataHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	if got := SoundsDir(); got != filepath.Join("/tmp/xdg-data", "soundpad") {
		t.Errorf("SoundsDir() = %q", got)
	}
}

func TestSoundsDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/tmp/home")

	if got := SoundsDir(); got != filepath.Join("/tmp/home", ".local", "share", "soundpad") {
		t.Errorf("SoundsDir() = %q", got)
	}
}
