package common

import (
	"os"
	"path/filepath"
)

// SoundsDir is the default location of the user's sound library, used
// by commands when no directory is given on the command line.
func SoundsDir() string {
	return filepath.Join(dataHome(), "soundpad")
}

// https://specifications.freedesktop.org/basedir/latest/#variables
func dataHome() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return dir
}
