package stage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cinefx/render"
)

type call struct {
	kind string
	x, y float64
}

// probe records every stage interaction
type probe struct {
	name     string
	canvas   *render.Canvas
	resizes  [][2]int
	frames   int
	dt       float64
	calls    []call
	closed   int
	closeErr error
}

func newProbe(name string) *probe {
	return &probe{name: name, canvas: render.NewCanvas(0, 0)}
}

func (p *probe) Name() string { return p.name }
func (p *probe) Canvas() *render.Canvas { return p.canvas }
func (p *probe) Frame(dt float64) { p.frames++; p.dt = dt }
func (p *probe) PointerLeave() { p.calls = append(p.calls, call{kind: "leave"}) }
func (p *probe) Close() error { p.closed++; return p.closeErr }
func (p *probe) PointerMove(x, y float64, _ time.Time) {
	p.calls = append(p.calls, call{"move", x, y})
}
func (p *probe) PointerDown(x, y float64, _ time.Time) {
	p.calls = append(p.calls, call{"down", x, y})
}
func (p *probe) PointerUp(x, y float64, _ time.Time) {
	p.calls = append(p.calls, call{"up", x, y})
}

func (p *probe) Resize(w, h int, dpr float64) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	p.resizes = append(p.resizes, [2]int{w, h})
	p.canvas.Resize(int(float64(w)*dpr), int(float64(h)*dpr))
	return true
}

// silent has no pointer support
type silent struct{ p *probe }

func (s silent) Name() string { return s.p.name }
func (s silent) Canvas() *render.Canvas { return s.p.canvas }
func (s silent) Frame(dt float64) { s.p.Frame(dt) }
func (s silent) Close() error { return s.p.Close() }
func (s silent) Resize(w, h int, d float64) bool { return s.p.Resize(w, h, d) }

func TestGrid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		n    int
		want []Rect
	}{
		{"empty", 100, 50, 0, nil},
		{"single", 100, 50, 1, []Rect{{0, 0, 100, 50}}},
		{"pair", 100, 50, 2, []Rect{{0, 0, 50, 50}, {50, 0, 50, 50}}},
		{"three", 101, 51, 3, []Rect{{0, 0, 50, 25}, {50, 0, 51, 25}, {0, 25, 101, 26}}},
		{"four", 100, 60, 4, []Rect{{0, 0, 50, 30}, {50, 0, 50, 30}, {0, 30, 50, 30}, {50, 30, 50, 30}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grid(tt.w, tt.h, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d rects, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected rect %d %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestMountUnmount(t *testing.T) {
	s := New(8)
	a, b := newProbe("a"), newProbe("b")
	require.NoError(t, s.Mount(a))
	require.NoError(t, s.Mount(b))
	assert.ErrorIs(t, s.Mount(newProbe("a")), ErrDuplicate)

	require.NoError(t, s.Unmount("a"))
	assert.Equal(t, 1, a.closed)
	assert.Len(t, s.Panels(), 1)

	// Unmounted components are no longer framed
	s.Step(0.016)
	assert.Zero(t, a.frames)
	assert.Equal(t, 1, b.frames)

	assert.ErrorIs(t, s.Unmount("a"), ErrNotMounted)
	assert.Equal(t, 1, a.closed)
}

func TestUnmountReportsCloseError(t *testing.T) {
	s := New(8)
	p := newProbe("leaky")
	p.closeErr = errors.New("leak")
	require.NoError(t, s.Mount(p))

	err := s.Unmount("leaky")
	assert.ErrorIs(t, err, p.closeErr)
	assert.Empty(t, s.Panels())
}

func TestResizeDeferredUntilNonZero(t *testing.T) {
	s := New(8)
	p := newProbe("a")
	require.NoError(t, s.Mount(p))
	s.Step(0.016)
	assert.Empty(t, p.resizes)

	require.True(t, s.Post(Resize(0, 40, 1)))
	s.Step(0.016)
	assert.Empty(t, p.resizes)

	require.True(t, s.Post(Resize(80, 40, 1)))
	s.Step(0.016)
	require.Equal(t, [][2]int{{80, 40}}, p.resizes)

	// Same size is not reapplied
	require.True(t, s.Post(Resize(80, 40, 1)))
	s.Step(0.016)
	assert.Len(t, p.resizes, 1)

	// Device pixel ratio change forces a pass
	require.True(t, s.Post(Resize(80, 40, 2)))
	s.Step(0.016)
	assert.Len(t, p.resizes, 2)
	w, h := p.Canvas().Size()
	assert.Equal(t, 160, w)
	assert.Equal(t, 80, h)
}

func TestPointerRouting(t *testing.T) {
	s := New(16)
	a, b := newProbe("a"), newProbe("b")
	require.NoError(t, s.Mount(a))
	require.NoError(t, s.Mount(b))
	require.True(t, s.Post(Resize(100, 50, 1)))

	now := time.Now()
	s.Post(PointerMove(10, 5, now))
	s.Post(PointerDown(10, 5, now))
	s.Post(PointerMove(60, 20, now))
	s.Post(PointerUp(60, 20, now))
	s.Post(Event{Kind: EventPointerLeave})
	s.Step(0.016)

	assert.Equal(t, []call{{"move", 10, 5}, {"down", 10, 5}, {kind: "leave"}}, a.calls)
	assert.Equal(t, []call{{"move", 10, 20}, {"up", 10, 20}, {kind: "leave"}}, b.calls)
}

func TestPointerSkipsNonTargets(t *testing.T) {
	s := New(8)
	p := silent{newProbe("quiet")}
	require.NoError(t, s.Mount(p))
	s.Post(Resize(40, 40, 1))
	s.Post(PointerDown(5, 5, time.Now()))
	s.Step(0.016)
	assert.Empty(t, p.p.calls)
}

func TestKeyAndCallRunOnFrame(t *testing.T) {
	s := New(8)
	var keys []string
	s.OnKey = func(name string) { keys = append(keys, name) }
	ran := false
	s.Post(Key("q"))
	s.Post(Call(func() { ran = true }))

	assert.False(t, ran)
	s.Step(0.016)
	assert.Equal(t, []string{"q"}, keys)
	assert.True(t, ran)
}

func TestPostFullQueue(t *testing.T) {
	s := New(1)
	assert.True(t, s.Post(Key("a")))
	assert.False(t, s.Post(Key("b")))
}

func TestRunStopsAndClosesOnCancel(t *testing.T) {
	s := New(8)
	p := newProbe("a")
	require.NoError(t, s.Mount(p))

	frames := make(chan struct{}, 1)
	s.OnFrame = func([]*Panel) {
		select {
		case frames <- struct{}{}:
		default:
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, 200) }()

	select {
	case <-frames:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a frame within 2s")
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Run to return after cancel")
	}
	assert.Equal(t, 1, p.closed)
	assert.Empty(t, s.Panels())
	assert.Positive(t, p.frames)
	assert.Positive(t, p.dt)
}

func TestRunRejectsInvalidFPS(t *testing.T) {
	s := New(8)
	assert.Error(t, s.Run(context.Background(), 0))
}

func TestPauseFreezesFrames(t *testing.T) {
	s := New(8)
	p := newProbe("a")
	require.NoError(t, s.Mount(p))

	s.Step(0.5)
	s.Pause()
	require.True(t, s.Paused())
	var presented int
	s.OnFrame = func([]*Panel) { presented++ }
	s.Step(0.5)
	s.Step(0.5)
	assert.Equal(t, 1, p.frames)
	assert.Equal(t, 2, presented)
	assert.Equal(t, 0.5, s.Elapsed())

	s.Resume()
	s.Step(0.25)
	assert.Equal(t, 2, p.frames)
	assert.Equal(t, 0.75, s.Elapsed())
}
