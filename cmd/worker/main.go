package main

import (
	"image-resizer/internal/app"
	"image-resizer/internal/app/worker"
	"image-resizer/internal/config"

	"github.com/wb-go/wbf/zlog"
)

func main() {
	zlog.Init()

	cfg, err := config.MustLoad()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Failed to load config")
	}
	app.SetLogLevel(cfg.LogLevel)

	workerApp, err := worker.NewWorker(cfg, &zlog.Logger)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Failed to create worker")
	}

	if err := workerApp.Run(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Worker failed")
	}

	zlog.Logger.Info().Msg("Worker exited successfully")
}
