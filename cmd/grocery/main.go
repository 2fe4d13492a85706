package main

import (
	"context"
	"log"

	"grocery/internal/config"
	"grocery/internal/http/handlers"
	applog "grocery/internal/log"
	"grocery/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	closer, err := applog.Setup(cfg.LogFile)
	if err != nil {
		log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
	}
	defer closer.Close()

	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if cfg.SeedDemo {
		if err := repos.SeedDemo(context.Background(), db); err != nil {
			log.Fatal(err)
		}
	}

	app := handlers.NewApp(cfg, db)
	log.Printf("[server] listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("[server] stopped: %v", err)
	}
}
