package exchangev1

import (
	"errors"

	orderbookv1 "github.com/Arjun-Dulam/Orderbook/internal/domain/orderbook/v1"
)

var (
	// ErrSymbolNotFound is returned when a symbol was never listed.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrSymbolAlreadyListed is returned when listing a symbol twice.
	// Re-listing would silently discard resting orders and trade history,
	// so it is rejected instead.
	ErrSymbolAlreadyListed = errors.New("symbol already listed")
)

// Exchange routes orders to per-symbol books. Each symbol owns one
// independent book with its own id space; the exchange itself only
// guards the symbol mapping, never the state inside a book.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=exchangev1_mock
type Exchange interface {
	// AddSymbol lists a new symbol with a fresh empty book.
	AddSymbol(symbol string) error
	// AddOrder forwards the request to the symbol's book.
	AddOrder(symbol string, req orderbookv1.PlaceOrderRequest) (orderbookv1.PlaceOrderResult, error)
	// RemoveOrder cancels a resting order on the symbol's book.
	RemoveOrder(symbol string, orderID uint32) (bool, error)
	// Trades returns the symbol's trade history.
	Trades(symbol string) ([]orderbookv1.Trade, error)
	// Symbols lists the currently registered symbols in no particular order.
	Symbols() []string
}
