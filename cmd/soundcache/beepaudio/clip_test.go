//go:build cgo

package beepaudio

import (
	"testing"
)

// sliceSeeker is an in-memory StreamSeeker over fixed samples.
type sliceSeeker struct {
	data [][2]float64
	pos  int
}

func (s *sliceSeeker) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	n := copy(samples, s.data[s.pos:])
	s.pos += n
	return n, true
}

func (s *sliceSeeker) Err() error { return nil }
func (s *sliceSeeker) Len() int   { return len(s.data) }

func (s *sliceSeeker) Position() int { return s.pos }

func (s *sliceSeeker) Seek(p int) error {
	s.pos = p
	return nil
}

func constantSamples(n int, v float64) [][2]float64 {
	data := make([][2]float64, n)
	for i := range data {
		data[i] = [2]float64{v, v}
	}
	return data
}

func TestClipStreamSilentWhenStopped(t *testing.T) {
	clip := newClipStream(&sliceSeeker{data: constantSamples(8, 0.5)})

	out := constantSamples(4, 1.0) // pre-filled garbage
	n, ok := clip.Stream(out)

	if n != 4 || !ok {
		t.Fatalf("n=%d ok=%v, want 4 true", n, ok)
	}
	for i, s := range out {
		if s != ([2]float64{}) {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
	if clip.src.(*sliceSeeker).pos != 0 {
		t.Error("stopped clip must not consume source samples")
	}
}

func TestClipStreamPlaysThroughAndStops(t *testing.T) {
	src := &sliceSeeker{data: constantSamples(6, 0.5)}
	clip := newClipStream(src)
	clip.playing = true

	out := make([][2]float64, 10)
	n, ok := clip.Stream(out)

	if n != 10 || !ok {
		t.Fatalf("n=%d ok=%v, want 10 true (streamer stays alive)", n, ok)
	}
	for i := 0; i < 6; i++ {
		if out[i][0] != 0.5 {
			t.Fatalf("sample %d = %v, want clip data", i, out[i])
		}
	}
	for i := 6; i < 10; i++ {
		if out[i] != ([2]float64{}) {
			t.Fatalf("sample %d = %v, want silence after clip end", i, out[i])
		}
	}
	if clip.playing {
		t.Error("clip must stop itself at the natural end")
	}
	if src.pos != 0 {
		t.Errorf("clip must rewind at the natural end, pos=%d", src.pos)
	}
}

func TestClipStreamLoopsForever(t *testing.T) {
	src := &sliceSeeker{data: constantSamples(4, 0.25)}
	clip := newClipStream(src)
	clip.playing = true
	clip.loops = -1

	out := make([][2]float64, 11)
	n, ok := clip.Stream(out)

	if n != 11 || !ok {
		t.Fatalf("n=%d ok=%v, want 11 true", n, ok)
	}
	for i, s := range out {
		if s[0] != 0.25 {
			t.Fatalf("sample %d = %v, want looped clip data", i, s)
		}
	}
	if !clip.playing {
		t.Error("looping clip must keep playing")
	}
}

func TestClipStreamLoopClearedMidFlight(t *testing.T) {
	src := &sliceSeeker{data: constantSamples(4, 0.25)}
	clip := newClipStream(src)
	clip.playing = true
	clip.loops = -1

	out := make([][2]float64, 2)
	clip.Stream(out) // mid-clip

	clip.loops = 0 // current play-through finishes without repeating

	rest := make([][2]float64, 8)
	clip.Stream(rest)

	for i := 0; i < 2; i++ {
		if rest[i][0] != 0.25 {
			t.Fatalf("sample %d = %v, want remainder of the pass", i, rest[i])
		}
	}
	for i := 2; i < 8; i++ {
		if rest[i] != ([2]float64{}) {
			t.Fatalf("sample %d = %v, want silence after final pass", i, rest[i])
		}
	}
	if clip.playing {
		t.Error("clip must stop after the final pass")
	}
}

func TestVolumeArgs(t *testing.T) {
	tests := []struct {
		name       string
		in         float64
		wantSilent bool
		wantVolume float64
	}{
		{"muted", 0, true, 0},
		{"below zero", -1, true, 0},
		{"half", 0.5, false, -1},
		{"unity", 1, false, 0},
		{"double", 2, false, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			silent, volume := volumeArgs(tc.in)
			if silent != tc.wantSilent || volume != tc.wantVolume {
				t.Errorf("volumeArgs(%v) = (%v, %v), want (%v, %v)",
					tc.in, silent, volume, tc.wantSilent, tc.wantVolume)
			}
		})
	}
}
