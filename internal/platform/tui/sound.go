package tui

import (
	"io"

	"github.com/vovakirdan/sheepjump/internal/sheep"
)

// SoundSink plays game sound events.
type SoundSink interface {
	Play(s sheep.Sound)
}

// bellSounds are the events loud enough to ring the terminal bell.
var bellSounds = map[sheep.Sound]bool{
	sheep.SoundDoubleJump: true,
	sheep.SoundMilestone:  true,
	sheep.SoundGameOver:   true,
}

// BellSink rings the terminal bell for a few notable events.
// Terminals have no mixer, so per-jump sounds stay silent.
type BellSink struct {
	w io.Writer
}

// NewBellSink creates a bell sink writing to w.
func NewBellSink(w io.Writer) *BellSink {
	return &BellSink{w: w}
}

// Play rings the bell if the sound is one of the notable ones.
func (b *BellSink) Play(s sheep.Sound) {
	if b.w == nil || !bellSounds[s] {
		return
	}
	_, _ = b.w.Write([]byte{'\a'})
}
