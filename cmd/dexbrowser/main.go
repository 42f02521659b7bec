package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/notjagan/dexbrowser/pkg/bot"
	"github.com/notjagan/dexbrowser/pkg/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Read()
	if err != nil {
		log.Fatal(err)
	}

	bot, err := bot.New(ctx, *cfg)
	if err != nil {
		log.Fatal(err)
	}

	err = bot.Run(ctx)
	if err != nil {
		log.Fatal(err)
	}
}
