// @title Quiz API
// @version 1.0
// @description Backend for managing quiz questions, sessions and statistics.

// @host localhost:8080
// @BasePath /

package main

import (
	"flag"
	"log"

	"quiz_backend/internal/app"
	"quiz_backend/internal/config"
	"quiz_backend/pkg/configwatcher"
	"quiz_backend/pkg/logger"
)

func main() {
	watchConfig := flag.Bool("watch-config", false, "reload configuration when the config file changes")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watchConfig {
		go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)
	}

	application.Run()
}
