package simulator

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exchangev1 "github.com/Arjun-Dulam/Orderbook/internal/domain/exchange/v1"
	exchangev1_mock "github.com/Arjun-Dulam/Orderbook/internal/domain/exchange/v1/mock"
	ordergeneratorv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/order-generator/v1"
	orderbookv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/orderbook/v1"
	"github.com/Arjun-Dulam/Orderbook/internal/usecase/exchange"
	ordergenerator "github.com/Arjun-Dulam/Orderbook/internal/usecase/order-generator"
	"github.com/Arjun-Dulam/Orderbook/pkg/config"
	"github.com/Arjun-Dulam/Orderbook/pkg/errors"
	"github.com/Arjun-Dulam/Orderbook/pkg/logger"
)

func testConfig(symbols ...string) *config.Config {
	return &config.Config{
		Symbols: symbols,
		Seed:    1,
		Market: config.MarketConfig{
			BasePrice:     10_000,
			PriceStdDev:   100,
			ArrivalRate:   1_000,
			CancelRate:    0.30,
			MinQuantity:   1,
			MaxQuantity:   100,
			PowerLawAlpha: 2.5,
			BuySellRatio:  0.5,
		},
	}
}

func realGeneratorFactory(market ordergeneratorv1.MarketConfig, seed int64) ordergeneratorv1.OrderGenerator {
	return ordergenerator.NewGenerator(market, seed)
}

func TestSimulator_RunsBudgetedWorkload(t *testing.T) {
	ex := exchange.NewExchange()
	cfg := testConfig("AAPL", "GOOG")
	sim := NewSimulatorWithOptions(ex, realGeneratorFactory, logger.NewNop(), cfg, &Options{
		ReportInterval:  time.Hour,
		OrdersPerWorker: 500,
		RestingWindow:   64,
	})

	require.NoError(t, sim.Start(context.Background()))

	// Workers exit on their own once the budget is spent
	deadline := time.After(10 * time.Second)
	for sim.OrdersSubmitted() < 1_000 {
		select {
		case <-deadline:
			t.Fatal("workers did not finish their budget in time")
		case <-time.After(10 * time.Millisecond):
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sim.Stop(stopCtx))

	assert.Equal(t, int64(1_000), sim.OrdersSubmitted())
	assert.Equal(t, int64(0), sim.OrdersRejected())
	assert.Positive(t, sim.TradesExecuted())
	assert.Positive(t, sim.OrdersCancelled())
	assert.NotEmpty(t, sim.RunID())

	// The flow actually went through real books
	var trades int
	for _, symbol := range cfg.Symbols {
		history, err := ex.Trades(symbol)
		require.NoError(t, err)
		trades += len(history)
	}
	assert.Equal(t, int64(trades), sim.TradesExecuted())
}

func TestSimulator_StartFailsOnDuplicateSymbol(t *testing.T) {
	ex := exchange.NewExchange()
	cfg := testConfig("AAPL", "AAPL")
	sim := NewSimulator(ex, realGeneratorFactory, logger.NewNop(), cfg)

	err := sim.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, exchangev1.ErrSymbolAlreadyListed)
	assert.Equal(t, errors.SimulatorStartError, errors.GetCode(err))

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = sim.Stop(stopCtx)
}

func TestSimulator_RoutesThroughExchange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExchange := exchangev1_mock.NewMockExchange(ctrl)
	cfg := testConfig("AAPL")

	mockExchange.EXPECT().AddSymbol("AAPL").Return(nil).Times(1)
	mockExchange.EXPECT().
		AddOrder("AAPL", gomock.Any()).
		Return(orderbookv1.PlaceOrderResult{}, nil).
		Times(25)

	sim := NewSimulatorWithOptions(mockExchange, realGeneratorFactory, logger.NewNop(), cfg, &Options{
		ReportInterval:  time.Hour,
		OrdersPerWorker: 25,
		RestingWindow:   64,
	})

	require.NoError(t, sim.Start(context.Background()))

	deadline := time.After(10 * time.Second)
	for sim.OrdersSubmitted() < 25 {
		select {
		case <-deadline:
			t.Fatal("worker did not finish its budget in time")
		case <-time.After(10 * time.Millisecond):
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sim.Stop(stopCtx))

	// Nothing rested, so nothing was cancelled
	assert.Equal(t, int64(0), sim.OrdersCancelled())
}
