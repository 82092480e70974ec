//go:build cgo

package beepaudio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gigurra/soundpad/cmd/soundcache"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = true

const sampleRate = beep.SampleRate(44100)

// Factory opens beep-backed players. The speaker is initialized once,
// on the first successful Prepare.
type Factory struct {
	mu          sync.Mutex
	initialized bool
}

// NewFactory creates a new audio player factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open binds a player to a file location. Decoding happens in Prepare.
func (f *Factory) Open(location string) (soundcache.Player, error) {
	return &clipPlayer{factory: f, path: location}, nil
}

// initSpeaker initializes the speaker if not already done.
func (f *Factory) initSpeaker() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return err
	}
	f.initialized = true
	return nil
}

// clipPlayer plays one decoded clip. The whole clip is buffered in
// memory on Prepare and its streamer chain stays in the speaker mixer
// for the player's lifetime; transport operations only flip state
// under the speaker lock.
type clipPlayer struct {
	factory *Factory
	path    string
	clip    *clipStream
	vol     *effects.Volume
}

// Prepare decodes the file into memory and installs the streamer
// chain in the speaker mixer, so the first Play starts immediately.
// Preparing twice is a no-op.
func (p *clipPlayer) Prepare() error {
	if p.clip != nil {
		return nil
	}

	if err := p.factory.initSpeaker(); err != nil {
		return err
	}

	file, err := os.Open(p.path)
	if err != nil {
		return err
	}
	defer file.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(p.path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	default:
		return fmt.Errorf("unsupported audio format: %s", filepath.Ext(p.path))
	}
	if err != nil {
		return err
	}

	// Buffer the whole clip at the speaker rate so restarts are cheap.
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	_ = streamer.Close()

	p.clip = newClipStream(buf.Streamer(0, buf.Len()))
	p.vol = &effects.Volume{Streamer: p.clip, Base: 2}
	speaker.Play(p.vol)
	return nil
}

func (p *clipPlayer) Play() {
	if p.clip == nil {
		return
	}
	speaker.Lock()
	p.clip.playing = true
	speaker.Unlock()
}

func (p *clipPlayer) Stop() {
	if p.clip == nil {
		return
	}
	speaker.Lock()
	p.clip.playing = false
	speaker.Unlock()
}

func (p *clipPlayer) SetPosition(pos time.Duration) {
	if p.clip == nil {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	n := sampleRate.N(pos)
	if n < 0 {
		n = 0
	}
	if n > p.clip.src.Len() {
		n = p.clip.src.Len()
	}
	_ = p.clip.src.Seek(n)
}

func (p *clipPlayer) SetVolume(v float64) {
	if p.vol == nil {
		return
	}
	silent, vol := volumeArgs(v)
	speaker.Lock()
	p.vol.Silent = silent
	p.vol.Volume = vol
	speaker.Unlock()
}

func (p *clipPlayer) SetLoop(count int) {
	if p.clip == nil {
		return
	}
	speaker.Lock()
	p.clip.loops = count
	speaker.Unlock()
}

func (p *clipPlayer) IsPlaying() bool {
	if p.clip == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.clip.playing
}

func (p *clipPlayer) Position() time.Duration {
	if p.clip == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sampleRate.D(p.clip.src.Position())
}

// volumeArgs maps a linear volume in [0,1] onto the exponential
// Volume streamer (base 2). Zero or below is silence, 1.0 is unity
// gain, values above 1 amplify.
func volumeArgs(v float64) (silent bool, volume float64) {
	if v <= 0 {
		return true, 0
	}
	return false, math.Log2(v)
}

// clipStream streams a seekable clip with pause and loop handling.
// When stopped it emits silence and stays in the mixer; when the clip
// ends naturally without looping it rewinds to the start and stops
// itself. All field access happens under the speaker lock.
type clipStream struct {
	src     beep.StreamSeeker
	playing bool
	loops   int // 0 = no repeat, negative = repeat forever
}

func newClipStream(src beep.StreamSeeker) *clipStream {
	return &clipStream{src: src}
}

func (c *clipStream) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for c.playing && filled < len(samples) {
		sn, sok := c.src.Stream(samples[filled:])
		filled += sn
		if sok && sn > 0 {
			continue
		}
		if c.loops != 0 && c.src.Len() > 0 {
			if c.loops > 0 {
				c.loops--
			}
			if err := c.src.Seek(0); err != nil {
				c.playing = false
			}
			continue
		}
		// Natural end of the clip: rewind and stop.
		_ = c.src.Seek(0)
		c.playing = false
	}
	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (c *clipStream) Err() error {
	return nil
}
