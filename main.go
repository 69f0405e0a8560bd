package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"starfield/client"
	"starfield/server"
	"starfield/utils"
	"starfield/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func watch(args []string) error {
	url := server.DefaultWatchURL
	if len(args) > 1 {
		url = args[1]
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := server.Watch(ctx, url, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	log.SetFlags(log.LstdFlags | log.Llongfile)

	if len(os.Args) > 1 && os.Args[1] == "watch" {
		if err := watch(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg, err := utils.ReadTOML("config.toml")
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no config.toml, using defaults")
		cfg = utils.DefaultConfig()
	} else if err != nil {
		log.Fatal(err)
	}
	resolutionConfig := cfg.UI.Resolution
	log.Printf("%+v", resolutionConfig)

	fsys, err := client.AssetFS(cfg.Assets.Dir)
	if err != nil {
		log.Fatal(err)
	}
	assets := client.LoadAssets(fsys, world.Sprites()...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var publisher client.Publisher
	if cfg.Telemetry.Address != "" {
		feed := server.NewServer()
		publisher = feed
		go func() {
			if err := server.Run(ctx, cfg.Telemetry.Address, feed); err != nil {
				log.Println(err)
			}
		}()
	}

	ebiten.SetWindowSize(resolutionConfig.X, resolutionConfig.Y)
	ebiten.SetWindowTitle(cfg.UI.Title)

	game := client.NewGame(assets, cfg.Tuning(), publisher)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, client.ErrQuit) {
		log.Fatal(err)
	}
}
