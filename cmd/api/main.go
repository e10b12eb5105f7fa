package main

import (
	"context"
	"log"

	"resumelens-backend/internal/bootstrap"
	"resumelens-backend/internal/shared/config"
	"resumelens-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()
	app := bootstrap.Build(context.Background(), cfg)
	if app.DB != nil {
		defer app.DB.Close()
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
