package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/avigneron/boutique/internal/server"
	"github.com/avigneron/boutique/internal/server/config"
)

func main() {

	ctx := context.Background()

	// best effort: a missing .env just means pure environment config
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("config error: %v", err)
		return
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
