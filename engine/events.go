package engine

// EventType identifies an abstract input event
type EventType int

const (
	EventNone EventType = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventStart
	EventQuit
	EventMute
)

var eventNames = map[EventType]string{
	EventNone:  "None",
	EventUp:    "Up",
	EventDown:  "Down",
	EventLeft:  "Left",
	EventRight: "Right",
	EventStart: "Start",
	EventQuit:  "Quit",
	EventMute:  "Mute",
}

func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "Unknown"
}

// Event is a device-agnostic input event delivered by the input source
type Event struct {
	Type EventType
}

// Direction maps a directional event to its Direction, DirNone otherwise
func (e Event) Direction() Direction {
	switch e.Type {
	case EventUp:
		return DirUp
	case EventDown:
		return DirDown
	case EventLeft:
		return DirLeft
	case EventRight:
		return DirRight
	default:
		return DirNone
	}
}
