package main

import (
	"log"

	"neonknights/pkg/server"
	"neonknights/pkg/shared/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gameServer := server.NewGameServer(cfg)
	if err := gameServer.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
