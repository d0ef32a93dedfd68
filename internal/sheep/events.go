package sheep

// Sound names a discrete audio cue. The sound collaborator decides
// whether and how to play it.
type Sound string

const (
	SoundJump       Sound = "jump"
	SoundDoubleJump Sound = "double_jump"
	SoundLand       Sound = "land"
	SoundGameOver   Sound = "game_over"
	SoundScore      Sound = "score"
	SoundMilestone  Sound = "milestone"
	SoundClick      Sound = "click"
)

// Event is a notification produced during HandleCommand or Tick.
type Event struct {
	Sound Sound
	Score int // Total score when the event fired
}

// emit appends an event to the pending buffer.
func (g *Game) emit(s Sound) {
	g.events = append(g.events, Event{Sound: s, Score: g.scorer.Total()})
}

// DrainEvents returns all pending events and clears the buffer.
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := g.events
	g.events = nil
	return out
}
