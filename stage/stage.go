// Package stage hosts simulation components: mount and unmount, the frame loop, a single
// event queue drained on the frame goroutine, and panel layout
package stage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/cinefx/render"
)

var (
	ErrNotMounted = errors.New("component not mounted")
	ErrDuplicate  = errors.New("component already mounted")
)

// Component is a self-contained simulation driven by the stage
type Component interface {
	Name() string
	// Resize applies a container size, returning false when skipped
	Resize(containerW, containerH int, dpr float64) bool
	// Frame advances by dt seconds and renders into Canvas
	Frame(dt float64)
	Canvas() *render.Canvas
	// Close releases all resources and is safe to call twice
	Close() error
}

// PointerTarget is implemented by components accepting pointer input
// Coordinates are local to the component's panel
type PointerTarget interface {
	PointerMove(x, y float64, at time.Time)
	PointerDown(x, y float64, at time.Time)
	PointerUp(x, y float64, at time.Time)
	PointerLeave()
}

// Panel is a mounted component and its layout slot
type Panel struct {
	Component Component
	Rect      Rect
	sized     bool
}

// Stage owns mounted components
// Every method except Post must be called from the frame goroutine
type Stage struct {
	events chan Event
	panels []*Panel

	width, height int
	dpr           float64

	// Index of the panel under the pointer, -1 for none
	hover int

	frames  int
	last    time.Time
	paused  bool
	elapsed float64 // Simulated seconds, frozen while paused

	// OnKey receives key events on the frame goroutine
	OnKey func(name string)
	// OnFrame runs after every component has rendered
	OnFrame func(panels []*Panel)
}

// New creates a stage with a buffered event queue
func New(buffer int) *Stage {
	if buffer <= 0 {
		buffer = 256
	}
	return &Stage{
		events: make(chan Event, buffer),
		dpr:    1,
		hover:  -1,
	}
}

// Post queues an event without blocking, returning false when the queue is full
// Safe for concurrent use
func (s *Stage) Post(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

// Panels returns mounted panels in mount order
func (s *Stage) Panels() []*Panel {
	return s.panels
}

// Frames returns the number of completed frames
func (s *Stage) Frames() int {
	return s.frames
}

// Size returns the container size
func (s *Stage) Size() (int, int) {
	return s.width, s.height
}

// Mount adds a component and relayouts
func (s *Stage) Mount(c Component) error {
	if s.find(c.Name()) >= 0 {
		return fmt.Errorf("mount %s: %w", c.Name(), ErrDuplicate)
	}
	s.panels = append(s.panels, &Panel{Component: c})
	s.layout()
	log.Printf("stage: mounted %s", c.Name())
	return nil
}

// Unmount stops framing a component and closes it
func (s *Stage) Unmount(name string) error {
	i := s.find(name)
	if i < 0 {
		return fmt.Errorf("unmount %s: %w", name, ErrNotMounted)
	}
	p := s.panels[i]
	s.panels = append(s.panels[:i], s.panels[i+1:]...)
	if s.hover == i {
		s.hover = -1
	} else if s.hover > i {
		s.hover--
	}
	s.layout()

	if err := p.Component.Close(); err != nil {
		return fmt.Errorf("unmount %s: %w", name, err)
	}
	log.Printf("stage: unmounted %s", name)
	return nil
}

// UnmountAll closes every component, returning the first error
func (s *Stage) UnmountAll() error {
	var first error
	for len(s.panels) > 0 {
		if err := s.Unmount(s.panels[0].Component.Name()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *Stage) find(name string) int {
	for i, p := range s.panels {
		if p.Component.Name() == name {
			return i
		}
	}
	return -1
}

// layout assigns grid slots and resizes every panel
// Panels whose resize is skipped are retried on the next pass
func (s *Stage) layout() {
	rects := Grid(s.width, s.height, len(s.panels))
	for i, p := range s.panels {
		if p.Rect != rects[i] {
			p.Rect = rects[i]
			p.sized = false
		}
	}
	s.resizePending()
}

func (s *Stage) resizePending() {
	for _, p := range s.panels {
		if p.sized || p.Rect.W <= 0 || p.Rect.H <= 0 {
			continue
		}
		p.Component.Resize(p.Rect.W, p.Rect.H, s.dpr)
		p.sized = true
	}
}

// Pause freezes simulation, events and presentation continue
func (s *Stage) Pause() {
	s.paused = true
}

// Resume continues simulation
func (s *Stage) Resume() {
	s.paused = false
}

// Paused reports pause state
func (s *Stage) Paused() bool {
	return s.paused
}

// Elapsed returns simulated seconds excluding pauses
func (s *Stage) Elapsed() float64 {
	return s.elapsed
}

// Step drains queued events then advances every component by dt
func (s *Stage) Step(dt float64) {
	s.drain()
	s.resizePending()
	if !s.paused {
		for _, p := range s.panels {
			p.Component.Frame(dt)
		}
		s.elapsed += dt
	}
	s.frames++
	if s.OnFrame != nil {
		s.OnFrame(s.panels)
	}
}

func (s *Stage) drain() {
	for {
		select {
		case ev := <-s.events:
			s.dispatch(ev)
		default:
			return
		}
	}
}

func (s *Stage) dispatch(ev Event) {
	switch ev.Kind {
	case EventResize:
		s.width, s.height = ev.Width, ev.Height
		if ev.DPR > 0 && ev.DPR != s.dpr {
			s.dpr = ev.DPR
			for _, p := range s.panels {
				p.sized = false
			}
		}
		s.layout()
	case EventKey:
		if s.OnKey != nil {
			s.OnKey(ev.Key)
		}
	case EventCall:
		if ev.Call != nil {
			ev.Call()
		}
	case EventPointerLeave:
		s.leave()
	default:
		s.pointer(ev)
	}
}

// pointer routes to the panel under the point in panel-local coordinates
// Crossing panels sends a leave to the previous one
func (s *Stage) pointer(ev Event) {
	idx := -1
	for i, p := range s.panels {
		if p.Rect.Contains(ev.X, ev.Y) {
			idx = i
			break
		}
	}
	if idx != s.hover {
		s.leave()
		s.hover = idx
	}
	if idx < 0 {
		return
	}
	p := s.panels[idx]
	target, ok := p.Component.(PointerTarget)
	if !ok {
		return
	}
	x, y := ev.X-float64(p.Rect.X), ev.Y-float64(p.Rect.Y)
	switch ev.Kind {
	case EventPointerMove:
		target.PointerMove(x, y, ev.At)
	case EventPointerDown:
		target.PointerDown(x, y, ev.At)
	case EventPointerUp:
		target.PointerUp(x, y, ev.At)
	}
}

func (s *Stage) leave() {
	if s.hover < 0 || s.hover >= len(s.panels) {
		s.hover = -1
		return
	}
	if target, ok := s.panels[s.hover].Component.(PointerTarget); ok {
		target.PointerLeave()
	}
	s.hover = -1
}

// Run drives frames at fps until ctx is done, then unmounts everything
func (s *Stage) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("run: invalid fps %d", fps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	s.last = time.Now()
	for {
		select {
		case <-ctx.Done():
			err := s.UnmountAll()
			log.Printf("stage: stopped after %d frames", s.frames)
			return err
		case now := <-ticker.C:
			dt := now.Sub(s.last).Seconds()
			s.last = now
			s.Step(dt)
		}
	}
}
