package orderbook

import (
	"fmt"
	"testing"

	ordergeneratorv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/order-generator/v1"
	orderbookv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/orderbook/v1"
	ordergenerator "github.com/Arjun-Dulam/Orderbook/internal/usecase/order-generator"
)

// pregenerate draws n requests outside the timed section so generator
// cost never shows up in measurements.
func pregenerate(n int, seed int64) []orderbookv1.PlaceOrderRequest {
	generator := ordergenerator.NewGenerator(ordergeneratorv1.DefaultMarketConfig(), seed)
	requests := make([]orderbookv1.PlaceOrderRequest, n)
	for i := range requests {
		requests[i] = generator.NextOrder()
	}
	return requests
}

func BenchmarkOrderbook_AddOrder(b *testing.B) {
	depths := []int{0, 1_000, 10_000, 100_000, 1_000_000}

	for _, depth := range depths {
		b.Run(fmt.Sprintf("depth_%d", depth), func(b *testing.B) {
			ob := NewOrderbook()
			for _, req := range pregenerate(depth, 1) {
				ob.AddOrder(req)
			}
			requests := pregenerate(b.N, 2)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ob.AddOrder(requests[i])
			}
		})
	}
}

func BenchmarkOrderbook_MixedFlow(b *testing.B) {
	generator := ordergenerator.NewGenerator(ordergeneratorv1.DefaultMarketConfig(), 1)
	requests := pregenerate(b.N, 2)
	cancels := make([]bool, b.N)
	for i := range cancels {
		cancels[i] = generator.ShouldCancel()
	}

	ob := NewOrderbook()
	var resting []uint32

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result := ob.AddOrder(requests[i])
		if result.Resting() {
			resting = append(resting, result.OrderID)
		}
		if cancels[i] && len(resting) > 0 {
			ob.RemoveOrder(resting[0])
			resting = resting[1:]
		}
	}
}

func BenchmarkOrderbook_CompactionRatio(b *testing.B) {
	ratios := []float64{0.10, 0.25, 0.50, 0.75}

	for _, ratio := range ratios {
		b.Run(fmt.Sprintf("ratio_%.2f", ratio), func(b *testing.B) {
			generator := ordergenerator.NewGenerator(ordergeneratorv1.DefaultMarketConfig(), 1)
			requests := pregenerate(b.N, 2)
			cancels := make([]bool, b.N)
			for i := range cancels {
				cancels[i] = generator.ShouldCancel()
			}

			ob := NewOrderbookWithOptions(&Options{CompactionRatio: ratio})
			var resting []uint32

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				result := ob.AddOrder(requests[i])
				if result.Resting() {
					resting = append(resting, result.OrderID)
				}
				if cancels[i] && len(resting) > 0 {
					ob.RemoveOrder(resting[0])
					resting = resting[1:]
				}
			}
		})
	}
}

func BenchmarkOrderbook_Compact(b *testing.B) {
	requests := pregenerate(10_000, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ob := NewOrderbookWithOptions(&Options{CompactionRatio: 1.0})
		var resting []uint32
		for _, req := range requests {
			result := ob.AddOrder(req)
			if result.Resting() {
				resting = append(resting, result.OrderID)
			}
		}
		for j, id := range resting {
			if j%2 == 0 {
				ob.RemoveOrder(id)
			}
		}
		b.StartTimer()

		ob.Compact()
	}
}
