package ordergenerator

import (
	"testing"
	"time"

	ordergeneratorv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/order-generator/v1"
	orderbookv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/orderbook/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Deterministic(t *testing.T) {
	cfg := ordergeneratorv1.DefaultMarketConfig()
	first := NewGenerator(cfg, 42)
	second := NewGenerator(cfg, 42)

	for i := 0; i < 1_000; i++ {
		assert.Equal(t, first.NextOrder(), second.NextOrder())
		assert.Equal(t, first.ShouldCancel(), second.ShouldCancel())
		assert.Equal(t, first.NextArrival(), second.NextArrival())
	}
}

func TestGenerator_SeedsDiverge(t *testing.T) {
	cfg := ordergeneratorv1.DefaultMarketConfig()
	first := NewGenerator(cfg, 1)
	second := NewGenerator(cfg, 2)

	same := true
	for i := 0; i < 100; i++ {
		if first.NextOrder() != second.NextOrder() {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestGenerator_QuantityBounds(t *testing.T) {
	cfg := ordergeneratorv1.DefaultMarketConfig()
	cfg.MinQuantity = 5
	cfg.MaxQuantity = 500
	generator := NewGenerator(cfg, 7)

	for i := 0; i < 10_000; i++ {
		order := generator.NextOrder()
		require.GreaterOrEqual(t, order.Quantity, cfg.MinQuantity)
		require.LessOrEqual(t, order.Quantity, cfg.MaxQuantity)
	}
}

func TestGenerator_PriceCentersOnBase(t *testing.T) {
	cfg := ordergeneratorv1.DefaultMarketConfig()
	generator := NewGenerator(cfg, 7)

	var sum float64
	const n = 10_000
	for i := 0; i < n; i++ {
		sum += float64(generator.NextOrder().Price)
	}
	mean := sum / n

	// Mean of n normal draws lands well within half a deviation of the base
	assert.InDelta(t, float64(cfg.BasePrice), mean, cfg.PriceStdDev/2)
}

func TestGenerator_SideRatio(t *testing.T) {
	cfg := ordergeneratorv1.DefaultMarketConfig()
	generator := NewGenerator(cfg, 7)

	buys := 0
	const n = 10_000
	for i := 0; i < n; i++ {
		if generator.NextOrder().Side == orderbookv1.SideBuy {
			buys++
		}
	}
	assert.InDelta(t, cfg.BuySellRatio, float64(buys)/n, 0.05)
}

func TestGenerator_CancelRate(t *testing.T) {
	cfg := ordergeneratorv1.DefaultMarketConfig()
	generator := NewGenerator(cfg, 7)

	cancels := 0
	const n = 10_000
	for i := 0; i < n; i++ {
		if generator.ShouldCancel() {
			cancels++
		}
	}
	assert.InDelta(t, cfg.CancelRate, float64(cancels)/n, 0.05)
}

func TestGenerator_ArrivalGaps(t *testing.T) {
	cfg := ordergeneratorv1.DefaultMarketConfig()
	generator := NewGenerator(cfg, 7)

	var total float64
	const n = 10_000
	for i := 0; i < n; i++ {
		gap := generator.NextArrival()
		require.GreaterOrEqual(t, gap, time.Duration(0))
		total += gap.Seconds()
	}

	// Exponential gaps at rate lambda average 1/lambda
	assert.InDelta(t, 1/cfg.ArrivalRate, total/n, 1/cfg.ArrivalRate)
}
