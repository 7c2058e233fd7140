package exchange

import (
	"sync/atomic"
	"testing"

	ordergeneratorv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/order-generator/v1"
	orderbookv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/orderbook/v1"
	ordergenerator "github.com/Arjun-Dulam/Orderbook/internal/usecase/order-generator"
)

// realisticSymbols mirrors the ten-name workload used throughout the
// benchmark suite.
var realisticSymbols = []string{
	"AAPL", "GOOG", "MSFT", "AMZN", "TSLA",
	"NVDA", "META", "NFLX", "AMD", "INTC",
}

func pregenerate(n int, seed int64) []orderbookv1.PlaceOrderRequest {
	generator := ordergenerator.NewGenerator(ordergeneratorv1.DefaultMarketConfig(), seed)
	requests := make([]orderbookv1.PlaceOrderRequest, n)
	for i := range requests {
		requests[i] = generator.NextOrder()
	}
	return requests
}

func BenchmarkExchange_SingleSymbol(b *testing.B) {
	ex := NewExchange()
	if err := ex.AddSymbol("AAPL"); err != nil {
		b.Fatal(err)
	}
	requests := pregenerate(b.N, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ex.AddOrder("AAPL", requests[i])
	}
}

func BenchmarkExchange_ParallelSameSymbol(b *testing.B) {
	ex := NewExchange()
	if err := ex.AddSymbol("AAPL"); err != nil {
		b.Fatal(err)
	}
	requests := pregenerate(b.N, 1)
	var next int64

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			i := atomic.AddInt64(&next, 1) - 1
			_, _ = ex.AddOrder("AAPL", requests[i])
		}
	})
}

func BenchmarkExchange_ParallelMultiSymbol(b *testing.B) {
	ex := NewExchange()
	for _, symbol := range realisticSymbols {
		if err := ex.AddSymbol(symbol); err != nil {
			b.Fatal(err)
		}
	}
	requests := pregenerate(b.N, 1)
	var next int64

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			i := atomic.AddInt64(&next, 1) - 1
			symbol := realisticSymbols[i%int64(len(realisticSymbols))]
			_, _ = ex.AddOrder(symbol, requests[i])
		}
	})
}

func BenchmarkExchange_RealisticWorkload(b *testing.B) {
	ex := NewExchange()
	for _, symbol := range realisticSymbols {
		if err := ex.AddSymbol(symbol); err != nil {
			b.Fatal(err)
		}
	}

	generator := ordergenerator.NewGenerator(ordergeneratorv1.DefaultMarketConfig(), 1)
	requests := pregenerate(b.N, 2)
	cancels := make([]bool, b.N)
	for i := range cancels {
		cancels[i] = generator.ShouldCancel()
	}
	resting := make(map[string][]uint32, len(realisticSymbols))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		symbol := realisticSymbols[i%len(realisticSymbols)]
		result, _ := ex.AddOrder(symbol, requests[i])
		if result.Resting() {
			resting[symbol] = append(resting[symbol], result.OrderID)
		}
		if cancels[i] && len(resting[symbol]) > 0 {
			_, _ = ex.RemoveOrder(symbol, resting[symbol][0])
			resting[symbol] = resting[symbol][1:]
		}
	}
}
