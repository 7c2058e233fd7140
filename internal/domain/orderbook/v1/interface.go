package orderbookv1

// Level is a read-only view of one price level: the price and copies of
// the live orders queued at it, front of queue first.
type Level struct {
	Price  int32   `json:"price"`
	Orders []Order `json:"orders"`
}

// Orderbook is the single-symbol matching engine. All methods are total:
// outcomes are signalled through return values, never panics. AddOrder
// runs the full matching loop synchronously and returns the trades it
// produced in deterministic order (best opposing price first, FIFO within
// a level).
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderbookv1_mock
type Orderbook interface {
	// AddOrder assigns identity to the request, matches it against the
	// opposite side and rests any remainder.
	AddOrder(req PlaceOrderRequest) PlaceOrderResult
	// RemoveOrder cancels a resting order by id. Returns false if the id
	// is unknown, already filled or already cancelled.
	RemoveOrder(orderID uint32) bool
	// Trades returns a copy of the full trade history since creation.
	Trades() []Trade
	// Compact physically reclaims tombstoned slots. Matchability and
	// relative priority of surviving orders are unchanged.
	Compact()
	// BestBid returns the highest bid price with at least one live order.
	BestBid() (int32, bool)
	// BestAsk returns the lowest ask price with at least one live order.
	BestAsk() (int32, bool)
	// BidVolume sums the remaining quantity of live bid orders.
	BidVolume() uint64
	// AskVolume sums the remaining quantity of live ask orders.
	AskVolume() uint64
	// OpenOrders counts live resting orders on both sides.
	OpenOrders() int
	// Levels snapshots one side of the book, best price first.
	Levels(side Side) []Level
}
