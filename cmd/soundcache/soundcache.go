package soundcache

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"
)

// LoopInfinite is the loop count that makes a player repeat forever.
const LoopInfinite = -1

// Locator resolves conventional sound names to playable file locations.
type Locator interface {
	// Locate returns the location of "<name>.<ext>", optionally under a
	// subdirectory, and whether it exists.
	Locate(name, ext, subdir string) (string, bool)
	// Exists reports whether a manually constructed path exists.
	// Relative paths are interpreted against the locator's root.
	Exists(path string) bool
}

// Player is a single decoded audio clip with transport controls.
// Implementations are exclusively owned by their cache slot and are
// only called with the cache mutex held.
type Player interface {
	Prepare() error
	Play()
	Stop() // stops output but keeps the current position
	SetPosition(pos time.Duration)
	SetVolume(v float64)
	SetLoop(count int) // 0 = no repeat, LoopInfinite = repeat forever
	IsPlaying() bool
	Position() time.Duration
}

// PlayerFactory constructs players bound to resolved file locations.
type PlayerFactory interface {
	Open(location string) (Player, error)
}

// Config controls the naming convention used to resolve pad indices
// to files. Zero values fall back to the defaults.
type Config struct {
	NamePrefix string // default "sound_"
	Ext        string // default "mp3"
	Subdir     string // default "sounds"
}

func (c Config) withDefaults() Config {
	if c.NamePrefix == "" {
		c.NamePrefix = "sound_"
	}
	if c.Ext == "" {
		c.Ext = "mp3"
	}
	if c.Subdir == "" {
		c.Subdir = "sounds"
	}
	return c
}

// State is a snapshot of the cache's observable playback state.
type State struct {
	MostRecent int // last pad successfully played, 0 if none yet
	LoopingPad int // pad currently set to loop forever, 0 if none
	Looping    bool
	Paused     bool
	Volume     float64
}

// slot holds a resolved location and its decoded player. Slots are
// only ever committed complete; a failed load leaves no slot behind.
type slot struct {
	location string
	player   Player
}

// Cache resolves pad indices to audio files, caches the decoded
// players, and serves all playback operations against that cache.
// Every access to the slot map and the scalar playback state is
// serialized through one mutex.
type Cache struct {
	mu sync.Mutex

	loc   Locator
	audio PlayerFactory
	cfg   Config

	slots      map[int]*slot
	mostRecent int
	loopingPad int
	paused     bool
	volume     float64

	events chan State
}

// New creates a cache with the given collaborators. Volume starts at
// full scale.
func New(loc Locator, audio PlayerFactory, cfg Config) *Cache {
	return &Cache{
		loc:    loc,
		audio:  audio,
		cfg:    cfg.withDefaults(),
		slots:  make(map[int]*slot),
		volume: 1.0,
		events: make(chan State, 64),
	}
}

// Load resolves and decodes the sound for one pad. Loading is
// idempotent: a pad that already has a player is left untouched.
// Failures are logged and leave the pad unloaded; a later Load or
// Play retries from scratch.
func (c *Cache) Load(pad int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadLocked(pad)
}

// LoadAll loads pads 1..count in order. Each pad's failure is
// independent and does not abort the sequence.
func (c *Cache) LoadAll(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for pad := 1; pad <= count; pad++ {
		c.loadLocked(pad)
	}
}

// loadLocked resolves, decodes and commits one pad. Must be called
// with the lock held. Returns the slot, or nil if the pad could not
// be loaded.
func (c *Cache) loadLocked(pad int) *slot {
	if pad < 1 {
		return nil
	}
	if s, ok := c.slots[pad]; ok {
		return s
	}

	name := fmt.Sprintf("%s%d", c.cfg.NamePrefix, pad)

	// Resolution fallback chain: conventional subdirectory, then an
	// unqualified lookup, then a manually joined path.
	location, found := c.loc.Locate(name, c.cfg.Ext, c.cfg.Subdir)
	if !found {
		location, found = c.loc.Locate(name, c.cfg.Ext, "")
	}
	if !found {
		manual := filepath.Join(c.cfg.Subdir, name+"."+c.cfg.Ext)
		if c.loc.Exists(manual) {
			location, found = manual, true
		}
	}
	if !found {
		slog.Warn("no audio file found for pad", "pad", pad, "name", name)
		return nil
	}

	player, err := c.audio.Open(location)
	if err != nil {
		slog.Warn("failed to open audio file", "pad", pad, "path", location, "error", err)
		return nil
	}
	if err := player.Prepare(); err != nil {
		slog.Warn("failed to decode audio file", "pad", pad, "path", location, "error", err)
		return nil
	}
	player.SetVolume(c.volume)

	s := &slot{location: location, player: player}
	c.slots[pad] = s
	return s
}

// Location returns the resolved file location for a loaded pad.
func (c *Cache) Location(pad int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[pad]
	if !ok {
		return "", false
	}
	return s.location, true
}

// Loaded reports whether a pad has a committed player.
func (c *Cache) Loaded(pad int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.slots[pad]
	return ok
}

// Playing reports whether a pad's player is currently producing sound.
func (c *Cache) Playing(pad int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[pad]
	return ok && s.player.IsPlaying()
}

// State returns a snapshot of the observable playback state.
func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Events returns the channel on which state snapshots are published
// after every observable mutation. Snapshots are queued in commit
// order; when the channel backs up the oldest snapshot is dropped.
func (c *Cache) Events() <-chan State {
	return c.events
}

// stateLocked builds a snapshot. Must be called with the lock held.
func (c *Cache) stateLocked() State {
	return State{
		MostRecent: c.mostRecent,
		LoopingPad: c.loopingPad,
		Looping:    c.loopingPad != 0,
		Paused:     c.paused,
		Volume:     c.volume,
	}
}

// publishLocked queues a snapshot for UI consumption. Must be called
// with the lock held so that queue order matches commit order.
func (c *Cache) publishLocked() {
	s := c.stateLocked()
	for {
		select {
		case c.events <- s:
			return
		default:
		}
		// Channel full: drop the oldest snapshot and retry.
		select {
		case <-c.events:
		default:
		}
	}
}
