package main

import (
	"flag"
	"log"
	"os"

	"MarketIntel/internal/di"
	"MarketIntel/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	envFile := flag.String("env", ".env", "dotenv file loaded before config")
	flag.Parse()

	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load(*envFile)

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s port=%d events=%t cache=%t/%s", cfg.Environment, cfg.Server.Port,
		cfg.Events.Enabled, cfg.Cache.Enabled, cfg.Cache.Backend)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
