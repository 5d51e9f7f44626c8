package sound

import (
	"errors"
	"testing"
	"time"
)

func TestSynthesizeLength(t *testing.T) {
	tests := []struct {
		name string
		clip Clip
		want time.Duration
	}{
		{"chime", Clip{Name: "portal", Kind: "chime", Notes: []float64{440, 880}, Note: 50 * time.Millisecond, Volume: 0.5}, 100 * time.Millisecond},
		{"drone", Clip{Name: "music", Kind: "drone", Notes: []float64{110, 220}, Note: 200 * time.Millisecond}, 200 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm, err := Synthesize(tt.clip)
			if err != nil {
				t.Fatalf("synthesize: %v", err)
			}
			wantBytes := SampleRate.N(tt.want) * 4
			if diff := len(pcm) - wantBytes; diff < -8 || diff > 8 {
				t.Fatalf("expected about %d bytes, got %d", wantBytes, len(pcm))
			}
			if len(pcm)%4 != 0 {
				t.Fatalf("expected whole stereo frames, got %d bytes", len(pcm))
			}
		})
	}
}

func TestSynthesizeNotSilent(t *testing.T) {
	pcm, err := Synthesize(Clip{Kind: "chime", Notes: []float64{440}, Note: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	peak := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	if peak < 1000 {
		t.Fatalf("expected an audible clip, peak %d", peak)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(Clip{Name: "x", Kind: "chime"}); err == nil {
		t.Fatalf("expected error for clip without notes")
	}
	if _, err := Build(Clip{Name: "x", Kind: "organ", Notes: []float64{1}}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
