package main

import (
	"fmt"
	"log"
	"log/slog"

	"cpu-scheduler-simulator/api"
	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/logger"
)

func main() {
	cfg := config.GetSchedulerConfig()
	if err := logger.Setup(cfg.LogFile, cfg.LogLevel); err != nil {
		log.Fatalln(err)
	}

	app := api.NewApp(cfg)

	slog.Info("starting scheduler simulator", "port", cfg.Port, "time_quantum", cfg.RoundRobinTimeQuantum)
	err := app.Listen(fmt.Sprintf(":%d", cfg.Port))
	_ = logger.Close()
	log.Fatalln(err)
}
