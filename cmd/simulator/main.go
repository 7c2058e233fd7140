package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/Arjun-Dulam/Orderbook/internal/app/simulator"
	ordergeneratorv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/order-generator/v1"
	"github.com/Arjun-Dulam/Orderbook/internal/usecase/exchange"
	ordergenerator "github.com/Arjun-Dulam/Orderbook/internal/usecase/order-generator"
	"github.com/Arjun-Dulam/Orderbook/pkg/config"
	"github.com/Arjun-Dulam/Orderbook/pkg/errors"
	"github.com/Arjun-Dulam/Orderbook/pkg/logger"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	var err error
	cfg = &config.Config{}
	err = config.Load(cfg)
	if err != nil {
		panic(err)
	}

	logger, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}

	log = logger
}

func main() {
	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initialize components
	ex := exchange.NewExchange()
	simulator := app.NewSimulatorWithOptions(
		ex,
		func(market ordergeneratorv1.MarketConfig, seed int64) ordergeneratorv1.OrderGenerator {
			return ordergenerator.NewGenerator(market, seed)
		},
		log,
		cfg,
		&app.Options{
			ReportInterval:  cfg.ReportInterval,
			OrdersPerWorker: cfg.OrdersPerWorker,
			RestingWindow:   app.DefaultOptions().RestingWindow,
		},
	)

	// Start the simulator
	if err := simulator.Start(ctx); err != nil {
		log.Error(errors.TracerFromError(err), logger.Field{
			Key:   "action",
			Value: "start_simulator",
		})
		return
	}

	log.Info("Simulator started successfully", logger.Field{
		Key:   "runID",
		Value: simulator.RunID(),
	})

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info("Received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	// Cancel the main context to signal shutdown
	cancel()

	// Create a timeout context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Stop the simulator gracefully
	if err := simulator.Stop(shutdownCtx); err != nil {
		log.Error(errors.TracerFromError(err), logger.Field{
			Key:   "action",
			Value: "stop_simulator",
		})
	}

	log.Info("Simulator shutdown complete")
}
