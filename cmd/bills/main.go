package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/bill-tracker/internal/clients/console"
	"max.ks1230/bill-tracker/internal/config"
	"max.ks1230/bill-tracker/internal/logger"
	"max.ks1230/bill-tracker/internal/model/messages"
	"max.ks1230/bill-tracker/internal/model/storage"
	"max.ks1230/bill-tracker/internal/tracing"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		log.Fatal("failed to init config:", err)
	}

	if err = logger.Init(conf.Logger().Env()); err != nil {
		log.Fatal("failed to init logger:", err)
	}

	if err = run(conf); err != nil {
		logger.Error("session failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(conf *config.Service) error {
	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close tracer", zap.Error(err))
		}
	}()

	client := console.New(os.Stdin, os.Stdout, conf.App())
	billStorage := storage.NewInMemStorage()
	msgService := messages.NewService(client, billStorage)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return client.ListenUpdates(ctx, msgService)
}
