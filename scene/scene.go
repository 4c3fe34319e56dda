// Package scene builds stage components by name and wires their cue hooks
package scene

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/cinefx/config"
	"github.com/lixenwraith/cinefx/cubefield"
	"github.com/lixenwraith/cinefx/fire"
	"github.com/lixenwraith/cinefx/smoke"
	"github.com/lixenwraith/cinefx/stage"
	"github.com/lixenwraith/cinefx/vmath"
	"github.com/lixenwraith/cinefx/water"
)

// Hooks receive simulation events, nil hooks are skipped
type Hooks struct {
	Splash  func()
	Shatter func(shards int)
}

// New builds the named scene with its own random source
func New(name string, rng *rand.Rand, hooks Hooks) (stage.Component, error) {
	switch name {
	case "fire":
		return fire.New(rng), nil
	case "smoke":
		return smoke.New(rng), nil
	case "water":
		w := water.New(rng)
		if hooks.Splash != nil {
			w.OnImpact = func(float64) { hooks.Splash() }
		}
		return w, nil
	case "cubes":
		f := cubefield.New(rng)
		if hooks.Shatter != nil {
			f.OnShatter = func(_ vmath.Vec3F, shards int) { hooks.Shatter(shards) }
		}
		return f, nil
	default:
		return nil, fmt.Errorf("scene %q: %w", name, config.ErrInvalid)
	}
}

// Expand resolves "all" to every scene
func Expand(name string) []string {
	if name == config.SceneAll {
		return config.Scenes
	}
	return []string{name}
}

// Build creates every scene named by selection, seeding each from seed
func Build(selection string, seed int64, hooks Hooks) ([]stage.Component, error) {
	var out []stage.Component
	for i, name := range Expand(selection) {
		c, err := New(name, rand.New(rand.NewSource(seed+int64(i))), hooks)
		if err != nil {
			for _, built := range out {
				_ = built.Close()
			}
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
