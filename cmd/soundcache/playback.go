package soundcache

import "log/slog"

// Play starts playback for a pad, loading it on demand if needed.
// If another pad is currently looping, its loop is torn down first;
// Play never starts a new loop by itself. On success the pad becomes
// the most recent one and the global pause flag is cleared.
func (c *Cache) Play(pad int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loopingPad != 0 && c.loopingPad != pad {
		c.stopLoopLocked()
		c.publishLocked()
	}

	s, ok := c.slots[pad]
	if !ok {
		s = c.loadLocked(pad)
	}
	if s == nil {
		slog.Warn("pad has no playable sound, skipping playback", "pad", pad)
		return
	}

	player := s.player
	player.Stop()
	player.SetPosition(0)
	player.SetVolume(c.volume)
	if c.loopingPad == pad {
		player.SetLoop(LoopInfinite)
	} else {
		player.SetLoop(0)
	}
	player.Play()

	// Observable state commits only after playback has been issued.
	c.mostRecent = pad
	c.paused = false
	c.publishLocked()
}

// ToggleLoop toggles infinite looping for the most recently played
// pad. If nothing has ever played this is a no-op. At most one pad
// loops at a time; starting a loop tears down any previous one.
func (c *Cache) ToggleLoop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mostRecent == 0 {
		return
	}

	if c.loopingPad == c.mostRecent {
		c.stopLoopLocked()
		c.publishLocked()
		return
	}

	if c.loopingPad != 0 {
		c.stopLoopLocked()
	}

	s, ok := c.slots[c.mostRecent]
	if !ok {
		slog.Warn("cannot loop unloaded pad", "pad", c.mostRecent)
		c.publishLocked()
		return
	}

	player := s.player
	player.SetVolume(c.volume)
	player.SetLoop(LoopInfinite)
	if !player.IsPlaying() {
		player.SetPosition(0)
		player.Play()
	}
	c.loopingPad = c.mostRecent
	c.publishLocked()
}

// stopLoopLocked clears loop mode on the looping pad, letting any
// in-flight play-through finish without repeating. Must be called
// with the lock held.
func (c *Cache) stopLoopLocked() {
	if s, ok := c.slots[c.loopingPad]; ok {
		s.player.SetLoop(0)
	}
	c.loopingPad = 0
}

// TogglePause pauses every playing pad, or resumes every pad that was
// previously paused mid-clip. A pad that never started or already
// finished is left alone. No-op when nothing is playing and the cache
// is not paused.
func (c *Cache) TogglePause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	shouldPause := false
	for _, s := range c.slots {
		if s.player.IsPlaying() {
			shouldPause = true
			break
		}
	}
	if !shouldPause && !c.paused {
		return
	}

	for _, s := range c.slots {
		player := s.player
		if shouldPause {
			if player.IsPlaying() {
				player.Stop()
			}
		} else {
			// Nonzero saved position means paused, not finished.
			if !player.IsPlaying() && player.Position() > 0 {
				player.Play()
			}
		}
	}

	c.paused = shouldPause
	c.publishLocked()
}

// StopAll tears down any active loop, then stops every loaded pad and
// rewinds it to the start. Clears the global pause flag.
func (c *Cache) StopAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loopingPad != 0 {
		c.stopLoopLocked()
	}

	for _, s := range c.slots {
		s.player.Stop()
		s.player.SetPosition(0)
	}

	c.paused = false
	c.publishLocked()
}

// SetVolume commits a new global volume and applies it to every
// loaded player immediately. Values are expected in [0,1]; anything
// outside is passed through to the playback backend as-is.
func (c *Cache) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.volume = v
	for _, s := range c.slots {
		s.player.SetVolume(v)
	}
	c.publishLocked()
}
