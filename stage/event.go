package stage

import "time"

// EventKind discriminates stage events
type EventKind uint8

const (
	EventPointerMove EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerLeave
	EventResize
	EventKey
	// EventCall runs Call on the frame goroutine
	EventCall
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "pointer-move"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventPointerLeave:
		return "pointer-leave"
	case EventResize:
		return "resize"
	case EventKey:
		return "key"
	case EventCall:
		return "call"
	default:
		return "unknown"
	}
}

// Event is a single queued input
// Pointer coordinates are container CSS pixels, resize carries the full container size
type Event struct {
	Kind EventKind
	X, Y float64
	At   time.Time

	Width, Height int
	DPR           float64

	Key  string
	Call func()
}

// PointerMove builds a move event
func PointerMove(x, y float64, at time.Time) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y, At: at}
}

// PointerDown builds a press event
func PointerDown(x, y float64, at time.Time) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y, At: at}
}

// PointerUp builds a release event
func PointerUp(x, y float64, at time.Time) Event {
	return Event{Kind: EventPointerUp, X: x, Y: y, At: at}
}

// Resize builds a container resize event
func Resize(w, h int, dpr float64) Event {
	return Event{Kind: EventResize, Width: w, Height: h, DPR: dpr}
}

// Key builds a named key event
func Key(name string) Event {
	return Event{Kind: EventKey, Key: name}
}

// Call schedules fn on the frame goroutine
func Call(fn func()) Event {
	return Event{Kind: EventCall, Call: fn}
}
