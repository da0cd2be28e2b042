package modes

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-snake/engine"
)

// InputHandler translates tcell events into engine events
type InputHandler struct {
	bindings *BindingTable
	onResize func(width, height int)
}

// NewInputHandler creates a new input handler; onResize may be nil
func NewInputHandler(bindings *BindingTable, onResize func(width, height int)) *InputHandler {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &InputHandler{
		bindings: bindings,
		onResize: onResize,
	}
}

// HandleEvent processes a tcell event and returns the engine event it maps to.
// ok is false for events the game does not react to.
func (h *InputHandler) HandleEvent(ev tcell.Event) (engine.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		if h.onResize != nil {
			w, ht := ev.Size()
			h.onResize(w, ht)
		}
	}
	return engine.Event{}, false
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) (engine.Event, bool) {
	// Uppercase runes share bindings with lowercase so caps lock does not break steering
	if ev.Key() == tcell.KeyRune && ev.Rune() >= 'A' && ev.Rune() <= 'Z' {
		ev = tcell.NewEventKey(tcell.KeyRune, ev.Rune()+('a'-'A'), ev.Modifiers())
	}

	t := h.bindings.Lookup(ev)
	if t == engine.EventNone {
		return engine.Event{}, false
	}
	return engine.Event{Type: t}, true
}
