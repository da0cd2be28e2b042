package modes

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-snake/engine"
)

// BindingTable maps keys to engine events
type BindingTable struct {
	keys  map[tcell.Key]engine.EventType
	runes map[rune]engine.EventType
}

// DefaultBindings returns the default binding table: arrows, hjkl and wasd steer
func DefaultBindings() *BindingTable {
	return &BindingTable{
		keys: map[tcell.Key]engine.EventType{
			tcell.KeyUp:    engine.EventUp,
			tcell.KeyDown:  engine.EventDown,
			tcell.KeyLeft:  engine.EventLeft,
			tcell.KeyRight: engine.EventRight,

			tcell.KeyEnter:  engine.EventStart,
			tcell.KeyEscape: engine.EventQuit,
			tcell.KeyCtrlC:  engine.EventQuit,
			tcell.KeyCtrlQ:  engine.EventQuit,
		},
		runes: map[rune]engine.EventType{
			// Vi keys
			'k': engine.EventUp,
			'j': engine.EventDown,
			'h': engine.EventLeft,
			'l': engine.EventRight,

			// WASD
			'w': engine.EventUp,
			's': engine.EventDown,
			'a': engine.EventLeft,
			'd': engine.EventRight,

			' ': engine.EventStart,
			'q': engine.EventQuit,
			'm': engine.EventMute,
		},
	}
}

// Lookup returns the event bound to a key event, EventNone if unbound
func (b *BindingTable) Lookup(ev *tcell.EventKey) engine.EventType {
	if ev.Key() == tcell.KeyRune {
		return b.runes[ev.Rune()]
	}
	return b.keys[ev.Key()]
}
