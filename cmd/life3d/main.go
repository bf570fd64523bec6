//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"life3d/internal/app"
)

func main() {
	f := app.NewFlags()
	f.Bind(flag.CommandLine)
	f.BindGUI(flag.CommandLine)
	flag.Usage = func() {
		app.PrintUsage(flag.CommandLine.Output(), os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := app.LoadConfig(f, flag.Args(), logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		if errors.Is(err, app.ErrUsage) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}

	eng, err := app.NewEngine(f.Sim, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(eng, cfg.View, f.Autoplay, logger)
	app.PrintCommands(os.Stdout)

	ebiten.SetWindowTitle("Game of Life: 3D")
	ebiten.SetTPS(f.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
