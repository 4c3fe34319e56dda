// cinefx runs the visual-effects showcase in a true-color terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cinefx/audio"
	"github.com/lixenwraith/cinefx/config"
	"github.com/lixenwraith/cinefx/stage"
	"github.com/lixenwraith/cinefx/terminal"
)

func main() {
	configPath := flag.String("config", "cinefx.toml", "showcase config file")
	sceneName := flag.String("scene", "", "scene to show: fire, smoke, water, cubes or all")
	colorMode := flag.String("color", "", "color mode: auto, truecolor or 256")
	debug := flag.Bool("debug", false, "write logs to logs/cinefx.log")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cinefx: %v\n", err)
		os.Exit(1)
	}
	if *sceneName != "" {
		cfg.Scene = *sceneName
	}
	if *colorMode != "" {
		cfg.Color = *colorMode
	}
	if *mute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "cinefx: %v\n", err)
		os.Exit(1)
	}
	mode, err := terminal.ParseColorMode(cfg.Color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cinefx: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *configPath, mode); err != nil {
		fmt.Fprintf(os.Stderr, "cinefx: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, configPath string, mode terminal.ColorMode) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("drawing surface unavailable: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("drawing surface unavailable: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	sound := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("cinefx: %v, continuing without sound", err)
		}
	}
	sound.SetVolume(cfg.Audio.Volume)
	sound.SetMuted(!cfg.Audio.Enabled)
	defer sound.Cleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st := stage.New(256)
	a := &app{
		stage:     st,
		presenter: terminal.NewPresenter(screen, mode),
		sound:     sound,
		cancel:    cancel,
		cfg:       cfg,
	}
	st.OnKey = a.key
	st.OnFrame = a.frame
	a.show(cfg.Scene)

	w, h := a.presenter.Container()
	st.Post(stage.Resize(w, h, cfg.DPR))

	go terminal.Pump(ctx, screen, st, cfg.DPR)
	go func() {
		err := config.Watch(ctx, configPath, func(c config.Config, err error) {
			st.Post(stage.Call(func() { a.reload(c, err) }))
		})
		if err != nil {
			log.Printf("cinefx: config watch disabled: %v", err)
		}
	}()

	log.Printf("cinefx: running %s at %d fps (%s per frame), color %s", cfg.Scene, cfg.FPS, frameBudget(cfg.FPS), mode)
	return st.Run(ctx, cfg.FPS)
}
