package ordergenerator

import (
	"math"
	"math/rand"
	"time"

	ordergeneratorv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/order-generator/v1"
	orderbookv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/orderbook/v1"
)

// Generator draws synthetic order flow from a market model: normally
// distributed prices around a base, power-law quantities (many small
// orders, a heavy tail of large ones), Bernoulli side and cancel
// decisions, and exponential inter-arrival gaps. A given config and seed
// always produce the same stream. Not safe for concurrent use.
type Generator struct {
	config ordergeneratorv1.MarketConfig
	rng    *rand.Rand
}

// NewGenerator creates a seeded generator for the given market model.
func NewGenerator(config ordergeneratorv1.MarketConfig, seed int64) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// NextOrder draws the next order request.
func (g *Generator) NextOrder() orderbookv1.PlaceOrderRequest {
	return orderbookv1.PlaceOrderRequest{
		Side:     g.nextSide(),
		Price:    g.nextPrice(),
		Quantity: g.nextQuantity(),
	}
}

// ShouldCancel draws the cancel decision for a submitted order.
func (g *Generator) ShouldCancel() bool {
	return g.rng.Float64() < g.config.CancelRate
}

// NextArrival draws the gap until the next order arrival.
func (g *Generator) NextArrival() time.Duration {
	seconds := g.rng.ExpFloat64() / g.config.ArrivalRate
	return time.Duration(seconds * float64(time.Second))
}

func (g *Generator) nextPrice() int32 {
	offset := g.rng.NormFloat64() * g.config.PriceStdDev
	return g.config.BasePrice + int32(offset)
}

// nextQuantity samples a bounded power law by inverse CDF:
// x = ((max^a - min^a)*u + min^a)^(1/a).
func (g *Generator) nextQuantity() uint32 {
	alpha := g.config.PowerLawAlpha
	minQ := float64(g.config.MinQuantity)
	maxQ := float64(g.config.MaxQuantity)

	u := g.rng.Float64()
	x := math.Pow((math.Pow(maxQ, alpha)-math.Pow(minQ, alpha))*u+math.Pow(minQ, alpha), 1/alpha)

	quantity := uint32(x)
	if quantity < g.config.MinQuantity {
		quantity = g.config.MinQuantity
	}
	if quantity > g.config.MaxQuantity {
		quantity = g.config.MaxQuantity
	}
	return quantity
}

func (g *Generator) nextSide() orderbookv1.Side {
	if g.rng.Float64() < g.config.BuySellRatio {
		return orderbookv1.SideBuy
	}
	return orderbookv1.SideSell
}
