//go:build !cgo

package beepaudio

import (
	"time"

	"github.com/gigurra/soundpad/cmd/soundcache"
)

// AudioAvailable indicates whether audio playback is supported in this build.
// Audio requires CGO for native sound libraries.
const AudioAvailable = false

// Factory is a no-op player factory for builds without cgo.
// The board still works but without sound.
type Factory struct{}

// NewFactory creates a new no-op factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns a silent player when cgo is disabled.
func (f *Factory) Open(location string) (soundcache.Player, error) {
	return silentPlayer{}, nil
}

type silentPlayer struct{}

func (silentPlayer) Prepare() error { return nil }

func (silentPlayer) Play() {}

func (silentPlayer) Stop() {}

func (silentPlayer) SetPosition(pos time.Duration) {}

func (silentPlayer) SetVolume(v float64) {}

func (silentPlayer) SetLoop(count int) {}

func (silentPlayer) IsPlaying() bool { return false }

func (silentPlayer) Position() time.Duration { return 0 }
