package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesFrames(t *testing.T) {
	out := t.TempDir()
	err := run(options{
		scene:  "water",
		frames: 20,
		every:  10,
		width:  80,
		height: 60,
		dpr:    1,
		seed:   7,
		out:    out,
		gif:    true,
	})
	require.NoError(t, err)

	for _, name := range []string{"water-0010.png", "water-0020.png", "water.gif"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
}

func TestRunFlingShattersCubes(t *testing.T) {
	out := t.TempDir()
	err := run(options{
		scene:  "cubes",
		frames: 30,
		width:  160,
		height: 80,
		dpr:    1,
		seed:   3,
		out:    out,
		bloom:  true,
		fling:  true,
	})
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "cubes-0030.png"))
	assert.NoError(t, err)
}

func TestRunRejectsBadInput(t *testing.T) {
	assert.Error(t, run(options{scene: "fire", frames: 0, out: t.TempDir()}))
	assert.Error(t, run(options{scene: "lava", frames: 1, out: t.TempDir()}))
}
