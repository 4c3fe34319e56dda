package gpu

import (
	"errors"
	"testing"

	"github.com/lixenwraith/cinefx/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisposeExactlyOnce(t *testing.T) {
	d := NewDevice()
	g := d.NewGeometry("box", []vmath.Vec3F{{}}, nil)
	m := d.NewMaterial("glass", 2)

	require.Equal(t, 2, d.Live())
	assert.Equal(t, 1, d.LiveOf(KindGeometry))
	assert.Equal(t, 1, d.LiveOf(KindMaterial))

	require.NoError(t, g.Dispose())
	err := g.Dispose()
	if !errors.Is(err, ErrDisposed) {
		t.Errorf("Expected ErrDisposed, got %v", err)
	}
	assert.Equal(t, 1, d.Live(), "double dispose must not be counted twice")
	assert.Equal(t, 1, d.Disposed())

	require.NoError(t, m.Dispose())
	assert.Equal(t, 0, d.Live())
	assert.Equal(t, 2, d.Created())
}

func TestRelease(t *testing.T) {
	d := NewDevice()
	g := d.NewGeometry("tetra", nil, nil)
	m := d.NewMaterial("shard", 0)

	n := Release(g, nil, m, g)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, d.Live())
	assert.True(t, g.IsDisposed())
}

func TestIDsUnique(t *testing.T) {
	d := NewDevice()
	seen := make(map[uint64]bool)
	for i := 0; i < 50; i++ {
		id := d.NewMaterial("m", 0).ID()
		if seen[id] {
			t.Fatalf("Expected unique ID, got repeat %d", id)
		}
		seen[id] = true
	}
}
