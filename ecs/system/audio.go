package system

import (
	"github.com/milk9111/unstable/ecs"
	"github.com/milk9111/unstable/ecs/component"
)

// SoundPlayer is the subset of an ebiten audio player the audio system
// drives.
type SoundPlayer interface {
	IsPlaying() bool
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
}

// AudioSystem plays and stops clips flagged on Audio components. Stops are
// applied before plays so a clip halted and requested in one tick restarts.
type AudioSystem struct {
	players map[string]SoundPlayer
}

func NewAudioSystem(players map[string]SoundPlayer) *AudioSystem {
	return &AudioSystem{players: players}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent, func(_ ecs.Entity, audioComp *component.Audio) {
		for i := range audioComp.Stop {
			if !audioComp.Stop[i] {
				continue
			}
			if player := a.player(audioComp, i); player != nil && player.IsPlaying() {
				player.Pause()
			}
			audioComp.Stop[i] = false
		}

		for i := range audioComp.Play {
			if !audioComp.Play[i] {
				continue
			}
			if player := a.player(audioComp, i); player != nil && !player.IsPlaying() {
				if i < len(audioComp.Volume) {
					player.SetVolume(audioComp.Volume[i])
				}
				_ = player.Rewind()
				player.Play()
			}
			audioComp.Play[i] = false
		}
	})
}

func (a *AudioSystem) player(audioComp *component.Audio, i int) SoundPlayer {
	if a == nil || i >= len(audioComp.Names) {
		return nil
	}
	return a.players[audioComp.Names[i]]
}
