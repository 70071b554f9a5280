package components

import (
	cfg "github.com/automoto/poetics/config"
	"github.com/yohamta/donburi"
)

// AudioData queues cues raised during a frame (singleton component)
type AudioData struct {
	PendingCues []cfg.CueID
}

var Audio = donburi.NewComponentType[AudioData]()
