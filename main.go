package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/tiltfall/config"
	"github.com/milk9111/tiltfall/logger"
)

func main() {
	cfgPath := flag.String("config", "", "config file path (defaults to ./config.yaml, then the OS config dir)")
	variant := flag.String("variant", "", "control variant override: tilt or thrust")
	debug := flag.Bool("debug", false, "enable debug overlay and bindings")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath, *variant)
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Graphics.Width, cfg.Graphics.Height)
	ebiten.SetWindowTitle("tiltfall")
	ebiten.SetVsyncEnabled(cfg.Graphics.VSync)
	if cfg.Graphics.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	game, err := NewGame(cfg, *cfgPath, *debug, zl)
	if err != nil {
		zl.Fatal("startup failed", zap.Error(err))
	}

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		zl.Fatal("game loop failed", zap.Error(err))
	}
}

// loadConfig merges the file over defaults and applies CLI overrides.
func loadConfig(path, variant string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if variant != "" {
		if variant != "tilt" && variant != "thrust" {
			return nil, fmt.Errorf("unknown variant %q", variant)
		}
		cfg.Game.Variant = variant
	}
	return cfg, nil
}
