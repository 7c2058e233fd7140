package exchange

import (
	"sync"

	exchangev1 "github.com/Arjun-Dulam/Orderbook/internal/domain/exchange/v1"
	orderbookv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/orderbook/v1"
	"github.com/Arjun-Dulam/Orderbook/internal/usecase/orderbook"
)

// BookFactory constructs the book backing a newly listed symbol.
type BookFactory func() orderbookv1.Orderbook

// Exchange routes orders to one independent book per symbol. The embedded
// lock guards only the existence and identity of mapping entries; book
// operations run outside it, so calls against different symbols never
// contend here. Each book serializes its own mutation.
type Exchange struct {
	mu      sync.RWMutex
	books   map[string]orderbookv1.Orderbook
	newBook BookFactory
}

// NewExchange creates an exchange whose symbols are backed by the default
// book implementation.
func NewExchange() *Exchange {
	return NewExchangeWithFactory(func() orderbookv1.Orderbook {
		return orderbook.NewOrderbook()
	})
}

// NewExchangeWithFactory creates an exchange with a custom book factory.
func NewExchangeWithFactory(factory BookFactory) *Exchange {
	return &Exchange{
		books:   make(map[string]orderbookv1.Orderbook),
		newBook: factory,
	}
}

// AddSymbol lists a new symbol with a fresh empty book. Re-listing a live
// symbol would silently discard its resting orders and trade history, so
// it is rejected with ErrSymbolAlreadyListed instead.
func (e *Exchange) AddSymbol(symbol string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.books[symbol]; ok {
		return exchangev1.ErrSymbolAlreadyListed
	}
	e.books[symbol] = e.newBook()
	return nil
}

// AddOrder forwards the request to the symbol's book.
func (e *Exchange) AddOrder(symbol string, req orderbookv1.PlaceOrderRequest) (orderbookv1.PlaceOrderResult, error) {
	book, err := e.book(symbol)
	if err != nil {
		return orderbookv1.PlaceOrderResult{}, err
	}
	return book.AddOrder(req), nil
}

// RemoveOrder cancels a resting order on the symbol's book.
func (e *Exchange) RemoveOrder(symbol string, orderID uint32) (bool, error) {
	book, err := e.book(symbol)
	if err != nil {
		return false, err
	}
	return book.RemoveOrder(orderID), nil
}

// Trades returns the symbol's trade history.
func (e *Exchange) Trades(symbol string) ([]orderbookv1.Trade, error) {
	book, err := e.book(symbol)
	if err != nil {
		return nil, err
	}
	return book.Trades(), nil
}

// Symbols lists the currently registered symbols in no particular order.
func (e *Exchange) Symbols() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	symbols := make([]string, 0, len(e.books))
	for symbol := range e.books {
		symbols = append(symbols, symbol)
	}
	return symbols
}

// book fetches the symbol's book under the shared lock, releasing it
// before the caller invokes any book operation.
func (e *Exchange) book(symbol string) (orderbookv1.Orderbook, error) {
	e.mu.RLock()
	book, ok := e.books[symbol]
	e.mu.RUnlock()

	if !ok {
		return nil, exchangev1.ErrSymbolNotFound
	}
	return book, nil
}
