package soundcache

import (
	"os"
	"path/filepath"
	"time"
)

// DirLocator resolves sound names against a directory on disk.
type DirLocator struct {
	Root string
}

// Locate looks for "<name>.<ext>" under Root, optionally inside a
// subdirectory, and returns the full path if the file exists.
func (d DirLocator) Locate(name, ext, subdir string) (string, bool) {
	path := filepath.Join(d.Root, subdir, name+"."+ext)
	if !isFile(path) {
		return "", false
	}
	return path, true
}

// Exists reports whether a constructed path exists. Relative paths
// are interpreted against Root.
func (d DirLocator) Exists(path string) bool {
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.Root, path)
	}
	return isFile(path)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// NopAudio is a PlayerFactory whose players make no sound. It lets
// commands exercise the cache's resolution chain without an audio
// device, e.g. for listing or exporting sounds.
type NopAudio struct{}

func (NopAudio) Open(location string) (Player, error) {
	return nopPlayer{}, nil
}

type nopPlayer struct{}

func (nopPlayer) Prepare() error { return nil }

func (nopPlayer) Play() {}

func (nopPlayer) Stop() {}

func (nopPlayer) SetPosition(pos time.Duration) {}

func (nopPlayer) SetVolume(v float64) {}

func (nopPlayer) SetLoop(count int) {}

func (nopPlayer) IsPlaying() bool { return false }

func (nopPlayer) Position() time.Duration { return 0 }
