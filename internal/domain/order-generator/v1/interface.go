package ordergeneratorv1

import (
	"time"

	orderbookv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/orderbook/v1"
)

// OrderGenerator produces a reproducible stream of synthetic order flow.
// Implementations are seeded; two generators with the same config and seed
// yield identical streams. Generators are not safe for concurrent use, so
// each worker owns its own instance.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=ordergeneratorv1_mock
type OrderGenerator interface {
	// NextOrder draws the next order request.
	NextOrder() orderbookv1.PlaceOrderRequest
	// ShouldCancel draws the cancel decision for a submitted order.
	ShouldCancel() bool
	// NextArrival draws the gap until the next order arrival.
	NextArrival() time.Duration
}
