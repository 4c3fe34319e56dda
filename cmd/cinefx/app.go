package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/cinefx/audio"
	"github.com/lixenwraith/cinefx/config"
	"github.com/lixenwraith/cinefx/scene"
	"github.com/lixenwraith/cinefx/stage"
	"github.com/lixenwraith/cinefx/terminal"
)

// app holds showcase state, every method runs on the frame goroutine
type app struct {
	stage     *stage.Stage
	presenter *terminal.Presenter
	sound     *audio.SoundManager
	cancel    context.CancelFunc

	cfg   config.Config
	scene string
	seed  int64
}

// sceneForKey maps number keys to scenes, "" for other keys
func sceneForKey(key string) string {
	switch key {
	case "0", "a":
		return config.SceneAll
	case "1", "2", "3", "4":
		return config.Scenes[key[0]-'1']
	default:
		return ""
	}
}

// nextScene cycles through single scenes, then all
func nextScene(current string) string {
	order := append(append([]string{}, config.Scenes...), config.SceneAll)
	for i, name := range order {
		if name == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

func (a *app) key(name string) {
	switch name {
	case "q", "esc", "ctrl-c":
		a.cancel()
	case "m":
		a.sound.SetMuted(!a.sound.Muted())
		a.updateCaption()
	case "tab":
		a.show(nextScene(a.scene))
	case "p", " ":
		if a.stage.Paused() {
			a.stage.Resume()
		} else {
			a.stage.Pause()
		}
		a.updateCaption()
	default:
		if s := sceneForKey(name); s != "" {
			a.show(s)
		}
	}
}

// show replaces mounted components with the selected scenes
func (a *app) show(selection string) {
	if selection == a.scene && len(a.stage.Panels()) > 0 {
		return
	}
	if err := a.stage.UnmountAll(); err != nil {
		log.Printf("cinefx: unmount: %v", err)
	}
	a.seed++
	comps, err := scene.Build(selection, a.seed, scene.Hooks{
		Splash:  a.sound.PlaySplash,
		Shatter: a.sound.PlayShatter,
	})
	if err != nil {
		log.Printf("cinefx: %v", err)
		return
	}
	for _, c := range comps {
		if err := a.stage.Mount(c); err != nil {
			log.Printf("cinefx: %v", err)
		}
	}
	a.scene = selection
	a.updateCaption()
}

// reload applies a changed config file
func (a *app) reload(cfg config.Config, err error) {
	if err != nil {
		log.Printf("cinefx: config reload rejected: %v", err)
		return
	}
	if cfg.FPS != a.cfg.FPS || cfg.DPR != a.cfg.DPR {
		log.Printf("cinefx: fps and dpr changes apply on restart")
	}
	if mode, err := terminal.ParseColorMode(cfg.Color); err == nil {
		a.presenter.SetMode(mode)
	}
	a.sound.SetVolume(cfg.Audio.Volume)
	a.sound.SetMuted(!cfg.Audio.Enabled)
	if cfg.Scene != a.cfg.Scene {
		a.show(cfg.Scene)
	}
	a.cfg = cfg
	a.updateCaption()
}

func (a *app) updateCaption() {
	var b strings.Builder
	fmt.Fprintf(&b, " %s ", a.scene)
	for i, name := range config.Scenes {
		fmt.Fprintf(&b, " %d:%s", i+1, name)
	}
	b.WriteString("  0:all  tab:next  m:")
	if a.sound.Muted() {
		b.WriteString("unmute")
	} else {
		b.WriteString("mute")
	}
	if a.stage.Paused() {
		b.WriteString("  p:resume")
	} else {
		b.WriteString("  p:pause")
	}
	b.WriteString("  q:quit")
	a.presenter.SetCaption(b.String())
}

func (a *app) frame(panels []*stage.Panel) {
	a.presenter.Present(panels)
}

// frameBudget reports how long a frame may take at fps
func frameBudget(fps int) time.Duration {
	return time.Second / time.Duration(max(fps, 1))
}
