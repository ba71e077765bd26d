package main

import (
	"fmt"
	"log"

	"mindtrack/internal/ai"
	"mindtrack/internal/api"
	"mindtrack/internal/config"
	"mindtrack/internal/db"
	redisdb "mindtrack/internal/redis"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		log.Fatalf("[Server] Failed to load config: %v", err)
	}

	if err := db.Init(cfg); err != nil {
		log.Fatalf("[Server] Failed to connect to database: %v", err)
	}

	rdb := redisdb.NewClient(cfg)
	aiClient := ai.NewClient(cfg.AI)

	r := api.SetupRouter(cfg, rdb, aiClient)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("[Server] Server error: %v", err)
	}
}
