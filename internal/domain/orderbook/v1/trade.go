package orderbookv1

// Trade records one completed match. Price is always the resting order's
// price: the side already in the book trades at its quoted price, the
// aggressor takes it. Trade ids are monotonic within their book.
type Trade struct {
	ID          uint32 `json:"id"`
	Price       int32  `json:"price"`
	Quantity    uint32 `json:"quantity"`
	BuyOrderID  uint32 `json:"buyOrderID"`
	SellOrderID uint32 `json:"sellOrderID"`
}
