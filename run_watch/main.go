package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"starfield/server"
)

func main() {
	url := server.DefaultWatchURL
	if len(os.Args) > 1 {
		url = os.Args[1]
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := server.Watch(ctx, url, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
