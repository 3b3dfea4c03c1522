package game

// Event is a discrete player command.
type Event int

const (
	EventNone Event = iota
	EventMoveLeft
	EventMoveRight
	EventHardDrop
	EventTogglePause
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventMoveLeft:
		return "move_left"
	case EventMoveRight:
		return "move_right"
	case EventHardDrop:
		return "hard_drop"
	case EventTogglePause:
		return "toggle_pause"
	case EventQuit:
		return "quit"
	default:
		return "none"
	}
}
