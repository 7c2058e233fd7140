package simulator

import (
	"context"
	"sync"
	"time"

	exchangev1 "github.com/Arjun-Dulam/Orderbook/internal/domain/exchange/v1"
	ordergeneratorv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/order-generator/v1"
	"github.com/Arjun-Dulam/Orderbook/pkg/config"
	"github.com/Arjun-Dulam/Orderbook/pkg/errors"
	"github.com/Arjun-Dulam/Orderbook/pkg/logger"
	"github.com/oklog/ulid/v2"
)

// GeneratorFactory builds the seeded generator a worker draws its flow from.
type GeneratorFactory func(config ordergeneratorv1.MarketConfig, seed int64) ordergeneratorv1.OrderGenerator

// Simulator drives synthetic order flow through an exchange: one worker
// goroutine per symbol (each symbol has a single writer) plus a reporter
// that periodically logs run statistics. Every run is stamped with a ULID
// carried in each log line.
type Simulator struct {
	exchange     exchangev1.Exchange
	newGenerator GeneratorFactory
	logger       *logger.Logger
	config       *config.Config
	runID        string

	// Run statistics behind their own mutex; thread-safe getters below.
	mu       sync.RWMutex
	orders   int64
	trades   int64
	cancels  int64
	rejected int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	reportInterval  time.Duration
	ordersPerWorker int
	restingWindow   int
}

// NewSimulator creates a simulator with default options.
func NewSimulator(
	exchange exchangev1.Exchange,
	newGenerator GeneratorFactory,
	logger *logger.Logger,
	config *config.Config,
) *Simulator {
	return NewSimulatorWithOptions(exchange, newGenerator, logger, config, DefaultOptions())
}

// NewSimulatorWithOptions creates a simulator with custom options.
func NewSimulatorWithOptions(
	exchange exchangev1.Exchange,
	newGenerator GeneratorFactory,
	log *logger.Logger,
	cfg *config.Config,
	options *Options,
) *Simulator {
	runID := ulid.Make().String()
	return &Simulator{
		exchange:     exchange,
		newGenerator: newGenerator,
		logger:       log.WithFields(logger.Field{Key: "runID", Value: runID}),
		config:       cfg,
		runID:        runID,

		reportInterval:  options.ReportInterval,
		ordersPerWorker: options.OrdersPerWorker,
		restingWindow:   options.RestingWindow,
	}
}

// RunID returns the ULID stamped on this run.
func (s *Simulator) RunID() string {
	return s.runID
}

// Start lists the configured symbols and launches the per-symbol workers
// and the reporter.
func (s *Simulator) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	for _, symbol := range s.config.Symbols {
		if err := s.exchange.AddSymbol(symbol); err != nil {
			return errors.NewCodedError(errors.SimulatorStartError, err)
		}
	}

	market := marketConfig(s.config)
	for i, symbol := range s.config.Symbols {
		s.wg.Add(1)
		go s.runWorker(symbol, s.newGenerator(market, s.config.Seed+int64(i)))
	}

	s.wg.Add(1)
	go s.runReporter()

	s.logger.Info("Simulator started",
		logger.Field{Key: "symbols", Value: s.config.Symbols},
		logger.Field{Key: "seed", Value: s.config.Seed},
	)
	return nil
}

// Stop cancels the workers and waits for them to drain, honoring the
// caller's shutdown deadline.
func (s *Simulator) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Simulator stopped",
			logger.Field{Key: "orders", Value: s.OrdersSubmitted()},
			logger.Field{Key: "trades", Value: s.TradesExecuted()},
			logger.Field{Key: "cancels", Value: s.OrdersCancelled()},
		)
		return nil
	case <-ctx.Done():
		s.logger.Warn("Simulator stop timeout exceeded")
		return errors.NewCodedError(errors.SimulatorStopError, ctx.Err())
	}
}

// runWorker is the single mutating authority for its symbol. It submits
// generated orders, remembers a window of recent resting ids and cancels
// the oldest remembered id when the generator says so.
func (s *Simulator) runWorker(symbol string, generator ordergeneratorv1.OrderGenerator) {
	defer s.wg.Done()

	log := s.logger.WithFields(logger.Field{Key: "symbol", Value: symbol})
	log.Info("Starting symbol worker")

	var resting []uint32
	submitted := 0
	for {
		select {
		case <-s.ctx.Done():
			log.Info("Symbol worker shutting down",
				logger.Field{Key: "submitted", Value: submitted},
			)
			return
		default:
		}

		if s.ordersPerWorker > 0 && submitted >= s.ordersPerWorker {
			log.Info("Symbol worker reached its order budget",
				logger.Field{Key: "submitted", Value: submitted},
			)
			return
		}

		result, err := s.exchange.AddOrder(symbol, generator.NextOrder())
		if err != nil {
			log.Error(errors.TracerFromError(err),
				logger.Field{Key: "action", Value: "add_order"},
			)
			s.addRejected(1)
			continue
		}
		submitted++
		s.addOrders(1)
		s.addTrades(int64(len(result.Trades)))

		if result.Resting() {
			resting = append(resting, result.OrderID)
			if len(resting) > s.restingWindow {
				resting = resting[1:]
			}
		}

		if len(resting) > 0 && generator.ShouldCancel() {
			cancelled, err := s.exchange.RemoveOrder(symbol, resting[0])
			resting = resting[1:]
			if err != nil {
				log.Error(errors.TracerFromError(err),
					logger.Field{Key: "action", Value: "remove_order"},
				)
				continue
			}
			if cancelled {
				s.addCancels(1)
			}
		}
	}
}

// runReporter logs run statistics at the configured interval.
func (s *Simulator) runReporter() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.reportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.logger.Info("Simulation progress",
				logger.Field{Key: "orders", Value: s.OrdersSubmitted()},
				logger.Field{Key: "trades", Value: s.TradesExecuted()},
				logger.Field{Key: "cancels", Value: s.OrdersCancelled()},
				logger.Field{Key: "rejected", Value: s.OrdersRejected()},
			)
		}
	}
}

// Thread-safe statistics accessors.

// OrdersSubmitted returns how many orders have been accepted so far.
func (s *Simulator) OrdersSubmitted() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders
}

// TradesExecuted returns how many trades the submitted orders produced.
func (s *Simulator) TradesExecuted() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trades
}

// OrdersCancelled returns how many resting orders were cancelled.
func (s *Simulator) OrdersCancelled() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cancels
}

// OrdersRejected returns how many submissions the exchange rejected.
func (s *Simulator) OrdersRejected() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rejected
}

func (s *Simulator) addOrders(n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders += n
}

func (s *Simulator) addTrades(n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades += n
}

func (s *Simulator) addCancels(n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancels += n
}

func (s *Simulator) addRejected(n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected += n
}

// marketConfig maps the env-backed market section into the generator's
// domain entity.
func marketConfig(cfg *config.Config) ordergeneratorv1.MarketConfig {
	return ordergeneratorv1.MarketConfig{
		BasePrice:     cfg.Market.BasePrice,
		PriceStdDev:   cfg.Market.PriceStdDev,
		ArrivalRate:   cfg.Market.ArrivalRate,
		CancelRate:    cfg.Market.CancelRate,
		MinQuantity:   cfg.Market.MinQuantity,
		MaxQuantity:   cfg.Market.MaxQuantity,
		PowerLawAlpha: cfg.Market.PowerLawAlpha,
		BuySellRatio:  cfg.Market.BuySellRatio,
	}
}
