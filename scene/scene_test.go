package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cinefx/config"
	"github.com/lixenwraith/cinefx/cubefield"
	"github.com/lixenwraith/cinefx/stage"
)

func TestBuildAll(t *testing.T) {
	comps, err := Build(config.SceneAll, 1, Hooks{})
	require.NoError(t, err)
	require.Len(t, comps, len(config.Scenes))
	for i, c := range comps {
		assert.Equal(t, config.Scenes[i], c.Name())
		assert.NoError(t, c.Close())
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("lava", rand.New(rand.NewSource(1)), Hooks{})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestScenesRenderOnStage(t *testing.T) {
	comps, err := Build(config.SceneAll, 2, Hooks{})
	require.NoError(t, err)

	s := stage.New(8)
	for _, c := range comps {
		require.NoError(t, s.Mount(c))
	}
	s.Post(stage.Resize(160, 120, 1))
	for i := 0; i < 3; i++ {
		s.Step(1.0 / 60)
	}
	for _, p := range s.Panels() {
		w, h := p.Component.Canvas().Size()
		assert.Positive(t, w*h, p.Component.Name())
	}
	require.NoError(t, s.UnmountAll())
}

func TestShatterHookWired(t *testing.T) {
	got := 0
	c, err := New("cubes", rand.New(rand.NewSource(3)), Hooks{Shatter: func(n int) { got = n }})
	require.NoError(t, err)
	f := c.(*cubefield.Field)
	n := f.Shatter(f.Cubes()[0])
	assert.Equal(t, n, got)
	require.NoError(t, f.Close())
}
