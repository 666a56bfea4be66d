package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/courtside/skillserver/internal/config"
	"github.com/courtside/skillserver/internal/logger"
	"github.com/courtside/skillserver/internal/ranking"
	"github.com/courtside/skillserver/internal/service"
	"github.com/courtside/skillserver/internal/storage/sqlite"
	"github.com/courtside/skillserver/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	storage, err := sqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.WithError(err).Error("closing storage")
		}
	}()

	ratingService := service.New(storage, service.NewLogSink(log), log)
	rankingService := ranking.New(storage, log)
	server := web.New(ratingService, rankingService, cfg.Server, log)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("shutting down")
		}
	}()

	return server.Serve()
}
