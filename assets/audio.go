package assets

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/unstable/prefabs"
	"github.com/milk9111/unstable/sound"
)

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context. Ebiten allows only
// one.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(int(sound.SampleRate))
	})
	return audioContext
}

// LoadClipPlayers synthesises every clip and wraps it in a player. Looping
// clips repeat forever.
func LoadClipPlayers(clips []prefabs.AudioClipSpec) (map[string]*audio.Player, error) {
	ctx := AudioContext()
	players := make(map[string]*audio.Player, len(clips))
	for _, spec := range clips {
		pcm, err := sound.Synthesize(sound.Clip{
			Name:   spec.Name,
			Kind:   spec.Kind,
			Notes:  spec.Notes,
			Note:   time.Duration(spec.NoteMS) * time.Millisecond,
			Volume: spec.Volume,
		})
		if err != nil {
			return nil, fmt.Errorf("assets: clip %q: %w", spec.Name, err)
		}

		if !spec.Loop {
			players[spec.Name] = ctx.NewPlayerFromBytes(pcm)
			continue
		}
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		player, err := ctx.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("assets: clip %q: %w", spec.Name, err)
		}
		players[spec.Name] = player
	}
	return players, nil
}
