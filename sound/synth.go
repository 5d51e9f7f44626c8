// Package sound synthesises the game's clips with beep and renders them to
// the 16-bit little-endian stereo PCM that ebiten audio players consume.
package sound

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate = beep.SampleRate(44100)

var ErrUnknownKind = errors.New("sound: unknown clip kind")

// Clip describes one synthesised clip.
type Clip struct {
	Name   string
	Kind   string
	Notes  []float64
	Note   time.Duration
	Volume float64
}

// Build returns the streamer for clip.
func Build(clip Clip) (beep.Streamer, error) {
	if len(clip.Notes) == 0 {
		return nil, fmt.Errorf("sound: clip %q has no notes", clip.Name)
	}
	note := clip.Note
	if note <= 0 {
		note = 100 * time.Millisecond
	}

	switch clip.Kind {
	case "chime":
		return Chime(clip.Notes, note), nil
	case "drone":
		return Drone(clip.Notes, note), nil
	default:
		return nil, fmt.Errorf("sound: clip %q kind %q: %w", clip.Name, clip.Kind, ErrUnknownKind)
	}
}

// Chime plays notes one after another, each a short plucked sine with an
// octave overtone.
func Chime(notes []float64, note time.Duration) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		fund := newEnvelope(newSine(f, note), note, note/20, note/2)
		over := newEnvelope(newSine(2*f, note), note, note/20, note/4)
		parts = append(parts, beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)))
	}
	return beep.Seq(parts...)
}

// Drone sustains all notes together with slow fades at both ends so the
// clip loops without clicks.
func Drone(notes []float64, length time.Duration) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(notes))
	gain := 1 / float64(len(notes))
	for _, f := range notes {
		voice := newEnvelope(newSine(f, length), length, length/4, length/4)
		voices = append(voices, newVolume(voice, gain))
	}
	return beep.Mix(voices...)
}

// Render drains s into PCM bytes, applying volume.
func Render(s beep.Streamer, volume float64) []byte {
	s = newVolume(s, volume)
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				sample := int16(clamp(v) * math.MaxInt16)
				out = append(out, byte(sample), byte(sample>>8))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// Synthesize builds and renders clip.
func Synthesize(clip Clip) ([]byte, error) {
	s, err := Build(clip)
	if err != nil {
		return nil, err
	}
	volume := clip.Volume
	if volume <= 0 {
		volume = 1
	}
	return Render(s, volume), nil
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

type sine struct {
	freq     float64
	phase    float64
	position int
	duration int
}

func newSine(freq float64, d time.Duration) beep.Streamer {
	return &sine{freq: freq, duration: SampleRate.N(d)}
}

func (o *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sine) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, length, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(length),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; effects.Volume works in powers of Base.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
