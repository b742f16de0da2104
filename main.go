package main

import (
	"flag"
	"image"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wolfython/wolfython/assets"
	"github.com/wolfython/wolfython/config"
)

func main() {
	configPath := flag.String("config", "", "path to the tuning file (default ./"+config.DefaultPath+" when present)")
	debug := flag.Bool("debug", false, "enable the debug overlay")
	mute := flag.Bool("mute", false, "start with all audio muted")
	watch := flag.Bool("watch", false, "hot-reload the tuning file on change")
	seed := flag.Int64("seed", 0, "pipe placement seed (0 = random)")
	flag.Parse()

	log.SetReportTimestamp(false)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("loading tuning", "path", *configPath, "err", err)
	}

	opts := GameOptions{
		Debug: *debug,
		Mute:  *mute,
		Seed:  *seed,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	if *watch {
		watchPath := *configPath
		if watchPath == "" {
			watchPath = config.DefaultPath
		}
		watcher, err := config.NewWatcher(watchPath)
		if err != nil {
			log.Warn("tuning watch unavailable", "err", err)
		} else {
			defer watcher.Close()
			opts.Watcher = watcher
			log.Info("watching tuning file", "path", watchPath)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowIcon([]image.Image{assets.Icon()})

	log.Info("starting",
		"window", cfg.Window.Title,
		"size", [2]int{cfg.Window.Width, cfg.Window.Height},
		"seed", opts.Seed)

	if err := ebiten.RunGame(NewGame(cfg, opts)); err != nil {
		log.Error("game loop", "err", err)
		os.Exit(1)
	}
}
