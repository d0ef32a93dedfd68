package core

// Command is a logical input command, abstracted from physical keys.
// The platform translates key presses into commands; the game decides
// what each command means in its current state.
type Command int

const (
	CommandNone          Command = iota
	CommandStart                 // Enter - start a round from the menu or after game over
	CommandJumpOrConfirm         // Space, Up, W - jump while playing, confirm elsewhere
	CommandPauseToggle           // P, Esc - pause/unpause
	CommandQuitOrReset           // Q - back to menu, or exit from the menu
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandStart:
		return "Start"
	case CommandJumpOrConfirm:
		return "JumpOrConfirm"
	case CommandPauseToggle:
		return "PauseToggle"
	case CommandQuitOrReset:
		return "QuitOrReset"
	default:
		return "Unknown"
	}
}
