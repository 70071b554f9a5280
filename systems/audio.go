package systems

import (
	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/yohamta/donburi/ecs"
)

// CuePlayer is the audio port cues are drained into.
type CuePlayer interface {
	Play(cue cfg.CueID)
}

// NewUpdateAudio returns a system that hands every cue queued this frame to
// player and clears the queue. A nil player drops cues.
func NewUpdateAudio(player CuePlayer) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Audio.First(e.World)
		if !ok {
			return
		}
		audioData := components.Audio.Get(entry)
		for _, cue := range audioData.PendingCues {
			if player != nil {
				player.Play(cue)
			}
		}
		audioData.PendingCues = audioData.PendingCues[:0]
	}
}

// QueueCue queues a cue to be played at the end of the frame
func QueueCue(e *ecs.ECS, cue cfg.CueID) {
	audioData := getOrCreateAudio(e)
	audioData.PendingCues = append(audioData.PendingCues, cue)
}

// getOrCreateAudio returns the singleton Audio component, creating it if needed
func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingCues: make([]cfg.CueID, 0, 4),
		})
	}
	return components.Audio.Get(entry)
}
