package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textinput/key"
)

// specialKeys maps tcell special keys onto textinput key identities.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// ctrlChords maps the control chords tcell folds into control
// characters back onto letter identities.
var ctrlChords = map[tcell.Key]key.Key{
	tcell.KeyCtrlA: key.KeyA,
	tcell.KeyCtrlB: key.KeyB,
	tcell.KeyCtrlC: key.KeyC,
	tcell.KeyCtrlE: key.KeyE,
	tcell.KeyCtrlF: key.KeyF,
	tcell.KeyCtrlV: key.KeyV,
}

// translateKey converts a tcell key event into the decoded form the
// textinput core consumes. Events with no mapping report ok = false.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := translateModifiers(ev.Modifiers())

	if k, ok := specialKeys[ev.Key()]; ok {
		return key.NewSpecialEvent(k, mods), true
	}
	if k, ok := ctrlChords[ev.Key()]; ok {
		return key.NewSpecialEvent(k, mods.With(key.ModCtrl)), true
	}
	if ev.Key() == tcell.KeyRune {
		return key.NewRuneEvent(ev.Rune(), mods), true
	}
	return key.Event{}, false
}

func translateModifiers(mods tcell.ModMask) key.Modifier {
	var out key.Modifier
	if mods&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if mods&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if mods&tcell.ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if mods&tcell.ModMeta != 0 {
		out = out.With(key.ModMeta)
	}
	return out
}
