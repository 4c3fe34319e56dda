package terminal

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cinefx/stage"
)

// Input translates tcell events into stage events
// Tracks the primary button to derive press and release edges
type Input struct {
	// DPR is reported with resize events, 1 when unset
	DPR float64

	pressed bool
}

// Translate converts ev, returning false for events the stage ignores
// Cell coordinates map to the pixel center of the cell's upper half
func (in *Input) Translate(ev tcell.Event) (stage.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := float64(cx)+0.5, float64(cy)*2+1
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !in.pressed:
			in.pressed = true
			return stage.PointerDown(x, y, ev.When()), true
		case !down && in.pressed:
			in.pressed = false
			return stage.PointerUp(x, y, ev.When()), true
		default:
			return stage.PointerMove(x, y, ev.When()), true
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		dpr := in.DPR
		if dpr <= 0 {
			dpr = 1
		}
		return stage.Resize(w, h*2, dpr), true

	case *tcell.EventFocus:
		if !ev.Focused {
			in.pressed = false
			return stage.Event{Kind: stage.EventPointerLeave}, true
		}

	case *tcell.EventKey:
		return stage.Key(keyName(ev)), true
	}
	return stage.Event{}, false
}

func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl-c"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	default:
		return ev.Name()
	}
}

// Pump feeds screen events into st until the screen is finalized or ctx ends
func Pump(ctx context.Context, screen tcell.Screen, st *stage.Stage, dpr float64) {
	in := Input{DPR: dpr}
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}
		sev, ok := in.Translate(ev)
		if !ok {
			continue
		}
		if !st.Post(sev) && sev.Kind != stage.EventPointerMove {
			log.Printf("terminal: event queue full, dropped %s", sev.Kind)
		}
	}
}
