package main

import (
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/config"
	"github.com/matthewmachida/yumis-bakery/internal/database"
	"github.com/matthewmachida/yumis-bakery/internal/live"
	"github.com/matthewmachida/yumis-bakery/internal/logger"
	"github.com/matthewmachida/yumis-bakery/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env first so viper's env overrides can pick it up
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}

	if cfg.Log.Development {
		logger.InitLoggerDev()
	} else {
		logger.InitLogger()
	}
	defer logger.Sync()

	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Log.Fatalw("init database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Log.Fatalw("migrate database", "error", err)
	}
	if err := database.Seed(db); err != nil {
		logger.Log.Fatalw("seed database", "error", err)
	}

	feed := live.NewHub()
	r := router.SetupRouter(cfg, db, feed)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Log.Infow("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Log.Fatalw("run server", "error", err)
	}
}
