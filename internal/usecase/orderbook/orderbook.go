package orderbook

import (
	"sync"

	orderbookv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/orderbook/v1"
)

// location resolves an order id to its slot: which side, which price level,
// which index inside the level's slot slice. Indices stay valid through
// tombstoning (slots are never shifted) and are rewritten by compaction.
type location struct {
	side  orderbookv1.Side
	price int32
	index int
}

// priceLevel is the FIFO queue of resting orders at one exact price.
// Slots are append-only between compactions; tombstoned orders linger so
// that recorded indices stay valid.
type priceLevel struct {
	price  int32
	orders []*orderbookv1.Order
}

// firstLive returns the earliest non-tombstoned order at this level, or
// nil when the whole level is tombstoned.
func (l *priceLevel) firstLive() *orderbookv1.Order {
	for _, order := range l.orders {
		if !order.Tombstoned {
			return order
		}
	}
	return nil
}

// Orderbook is a single-symbol continuous double-auction matching engine
// with price-time priority. Removal is lazy: cancelled and filled orders
// are tombstoned in place and physically reclaimed by a batched compaction
// pass once their share of the book exceeds the compaction ratio.
//
// An embedded RWMutex serializes all mutation, so one book can safely take
// concurrent calls from multiple goroutines. Sequence counters are owned
// per book; ids are unique only within their book.
type Orderbook struct {
	mu sync.RWMutex

	bids *levelTree // descending, best = highest price
	asks *levelTree // ascending, best = lowest price

	locations map[uint32]location
	trades    []orderbookv1.Trade

	nextOrderID  uint32
	nextTradeID  uint32
	nextSequence uint64

	totalSlots      int
	tombstonedSlots int

	compactionRatio float64
}

// NewOrderbook creates an empty book with default options.
func NewOrderbook() *Orderbook {
	return NewOrderbookWithOptions(DefaultOptions())
}

// NewOrderbookWithOptions creates an empty book with custom options.
func NewOrderbookWithOptions(options *Options) *Orderbook {
	return &Orderbook{
		bids:            newLevelTree(true),
		asks:            newLevelTree(false),
		locations:       make(map[uint32]location),
		compactionRatio: options.CompactionRatio,
	}
}

// AddOrder assigns identity to the request, matches it against the
// opposite side under price-time priority and rests any remainder. The
// returned trades are in the order they executed: best opposing price
// first, FIFO within a level.
func (ob *Orderbook) AddOrder(req orderbookv1.PlaceOrderRequest) orderbookv1.PlaceOrderResult {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	order := &orderbookv1.Order{
		ID:       ob.nextOrderID,
		Side:     req.Side,
		Price:    req.Price,
		Quantity: req.Quantity,
		Sequence: ob.nextSequence,
	}
	ob.nextOrderID++
	ob.nextSequence++

	trades := ob.match(order)

	if order.Quantity > 0 {
		ob.rest(order)
	}

	return orderbookv1.PlaceOrderResult{
		OrderID:   order.ID,
		Remaining: order.Quantity,
		Trades:    trades,
	}
}

// match runs the matching loop for an incoming order, decrementing its
// quantity in place and returning the trades produced.
func (ob *Orderbook) match(incoming *orderbookv1.Order) []orderbookv1.Trade {
	opposite := ob.sideTree(incoming.Side.Opposite())

	var trades []orderbookv1.Trade
	for incoming.Quantity > 0 && opposite.len() > 0 {
		level := opposite.best()

		resting := level.firstLive()
		if resting == nil {
			// Every slot at the best level is tombstoned. Drop the level
			// and retry; counters are reconciled by compaction.
			opposite.delete(level.price)
			continue
		}

		if !crosses(incoming.Side, incoming.Price, level.price) {
			break
		}

		quantity := incoming.Quantity
		if resting.Quantity < quantity {
			quantity = resting.Quantity
		}
		incoming.Quantity -= quantity
		resting.Quantity -= quantity

		// The resting side always trades at its quoted price.
		trade := orderbookv1.Trade{
			ID:       ob.nextTradeID,
			Price:    resting.Price,
			Quantity: quantity,
		}
		ob.nextTradeID++
		if incoming.IsBuy() {
			trade.BuyOrderID = incoming.ID
			trade.SellOrderID = resting.ID
		} else {
			trade.BuyOrderID = resting.ID
			trade.SellOrderID = incoming.ID
		}
		ob.trades = append(ob.trades, trade)
		trades = append(trades, trade)

		if resting.Quantity == 0 {
			ob.tombstone(resting)
		}
	}
	return trades
}

// rest appends the order to its own side's level, creating the level if
// absent, and records its location.
func (ob *Orderbook) rest(order *orderbookv1.Order) {
	tree := ob.sideTree(order.Side)
	level := tree.get(order.Price)
	if level == nil {
		level = &priceLevel{price: order.Price}
		tree.insert(level)
	}
	level.orders = append(level.orders, order)
	ob.locations[order.ID] = location{
		side:  order.Side,
		price: order.Price,
		index: len(level.orders) - 1,
	}
	ob.totalSlots++
}

// RemoveOrder cancels a resting order by id. A second call on the same id
// returns false: the lookup entry is gone once the order is tombstoned.
func (ob *Orderbook) RemoveOrder(orderID uint32) bool {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	loc, ok := ob.locations[orderID]
	if !ok {
		return false
	}

	level := ob.sideTree(loc.side).get(loc.price)
	ob.tombstone(level.orders[loc.index])
	return true
}

// tombstone marks an order as logically removed without shifting slots,
// drops its lookup entry and runs the compaction ratio check.
func (ob *Orderbook) tombstone(order *orderbookv1.Order) {
	order.Tombstoned = true
	delete(ob.locations, order.ID)
	ob.tombstonedSlots++

	if ob.totalSlots > 0 && float64(ob.tombstonedSlots)/float64(ob.totalSlots) > ob.compactionRatio {
		ob.compact()
	}
}

// Compact physically reclaims tombstoned slots on both sides. Survivor
// order is preserved, so matchability and priority are unchanged.
func (ob *Orderbook) Compact() {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	ob.compact()
}

func (ob *Orderbook) compact() {
	ob.compactSide(ob.bids)
	ob.compactSide(ob.asks)

	ob.totalSlots -= ob.tombstonedSlots
	ob.tombstonedSlots = 0
}

// compactSide stably removes tombstoned slots from every level, rewrites
// survivor indices in the lookup table and drops levels left empty.
func (ob *Orderbook) compactSide(tree *levelTree) {
	var empty []int32
	tree.walk(func(level *priceLevel) bool {
		survivors := level.orders[:0]
		for _, order := range level.orders {
			if order.Tombstoned {
				continue
			}
			survivors = append(survivors, order)
			ob.locations[order.ID] = location{
				side:  order.Side,
				price: level.price,
				index: len(survivors) - 1,
			}
		}
		level.orders = survivors
		if len(survivors) == 0 {
			empty = append(empty, level.price)
		}
		return true
	})
	for _, price := range empty {
		tree.delete(price)
	}
}

// Trades returns a copy of the full trade history since creation.
func (ob *Orderbook) Trades() []orderbookv1.Trade {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	trades := make([]orderbookv1.Trade, len(ob.trades))
	copy(trades, ob.trades)
	return trades
}

// BestBid returns the highest bid price holding at least one live order.
func (ob *Orderbook) BestBid() (int32, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return bestLive(ob.bids)
}

// BestAsk returns the lowest ask price holding at least one live order.
func (ob *Orderbook) BestAsk() (int32, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return bestLive(ob.asks)
}

// BidVolume sums the remaining quantity of live bid orders.
func (ob *Orderbook) BidVolume() uint64 {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return liveVolume(ob.bids)
}

// AskVolume sums the remaining quantity of live ask orders.
func (ob *Orderbook) AskVolume() uint64 {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return liveVolume(ob.asks)
}

// OpenOrders counts live resting orders on both sides.
func (ob *Orderbook) OpenOrders() int {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return len(ob.locations)
}

// Levels snapshots one side of the book, best price first. Tombstoned
// slots and drained levels are skipped.
func (ob *Orderbook) Levels(side orderbookv1.Side) []orderbookv1.Level {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	var levels []orderbookv1.Level
	ob.sideTree(side).walk(func(level *priceLevel) bool {
		var orders []orderbookv1.Order
		for _, order := range level.orders {
			if !order.Tombstoned {
				orders = append(orders, *order)
			}
		}
		if len(orders) > 0 {
			levels = append(levels, orderbookv1.Level{
				Price:  level.price,
				Orders: orders,
			})
		}
		return true
	})
	return levels
}

func (ob *Orderbook) sideTree(side orderbookv1.Side) *levelTree {
	if side == orderbookv1.SideBuy {
		return ob.bids
	}
	return ob.asks
}

// crosses reports whether an incoming order at price can trade against
// the best opposing level.
func crosses(side orderbookv1.Side, price, opposing int32) bool {
	if side == orderbookv1.SideBuy {
		return opposing <= price
	}
	return opposing >= price
}

func bestLive(tree *levelTree) (int32, bool) {
	price := int32(0)
	found := false
	tree.walk(func(level *priceLevel) bool {
		if level.firstLive() != nil {
			price = level.price
			found = true
			return false
		}
		return true
	})
	return price, found
}

func liveVolume(tree *levelTree) uint64 {
	var volume uint64
	tree.walk(func(level *priceLevel) bool {
		for _, order := range level.orders {
			if !order.Tombstoned {
				volume += uint64(order.Quantity)
			}
		}
		return true
	})
	return volume
}
