package orderbookv1

// Side identifies which half of the book an order belongs to.
type Side uint8

const (
	// SideBuy marks a bid order.
	SideBuy Side = iota
	// SideSell marks an ask order.
	SideSell
)

// String returns the human-readable name of the side.
func (s Side) String() string {
	switch s {
	case SideBuy:
		return "Buy"
	case SideSell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// Order is a resting order as stored inside a book. Identity and sequence
// are assigned by the book; Quantity is the remaining quantity and is
// decremented in place while the order rests. Prices are signed
// minor-currency units, so negative prices are as valid as positive ones.
type Order struct {
	ID         uint32 `json:"id"`
	Side       Side   `json:"side"`
	Price      int32  `json:"price"`
	Quantity   uint32 `json:"quantity"`
	Sequence   uint64 `json:"sequence"`
	Tombstoned bool   `json:"tombstoned"`
}

// IsBuy reports whether the order sits on the bid side.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsSell reports whether the order sits on the ask side.
func (o *Order) IsSell() bool {
	return o.Side == SideSell
}

// PlaceOrderRequest carries the caller-supplied half of an order. The book
// assigns everything else and never writes back into the request.
type PlaceOrderRequest struct {
	Side     Side   `json:"side"`
	Price    int32  `json:"price"`
	Quantity uint32 `json:"quantity"`
}

// PlaceOrderResult reports the outcome of a single AddOrder call.
// Remaining is the post-match quantity: zero means fully filled and never
// inserted, anything else is now resting in the book under OrderID.
type PlaceOrderResult struct {
	OrderID   uint32  `json:"orderID"`
	Remaining uint32  `json:"remaining"`
	Trades    []Trade `json:"trades"`
}

// Resting reports whether the submitted order is now resting in the book.
func (r *PlaceOrderResult) Resting() bool {
	return r.Remaining > 0
}
