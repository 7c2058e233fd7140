package ordergeneratorv1

// MarketConfig parameterises the synthetic market a generator draws from.
// Prices are normally distributed around BasePrice, quantities follow a
// bounded power law (many small orders, a heavy tail of large ones), and
// side/cancel decisions are Bernoulli draws.
type MarketConfig struct {
	// BasePrice is the mean price in minor-currency units.
	BasePrice int32
	// PriceStdDev is the standard deviation of generated prices.
	PriceStdDev float64
	// ArrivalRate is the order arrival intensity in orders per second.
	ArrivalRate float64
	// CancelRate is the probability that a submitted order is later cancelled.
	CancelRate float64
	// MinQuantity is the inclusive lower bound on generated quantities.
	MinQuantity uint32
	// MaxQuantity is the inclusive upper bound on generated quantities.
	MaxQuantity uint32
	// PowerLawAlpha is the exponent of the quantity distribution.
	PowerLawAlpha float64
	// BuySellRatio is the probability that a generated order is a buy.
	BuySellRatio float64
}

// DefaultMarketConfig returns the reference market used by the benchmark
// suite: a 100.00 base price, moderate volatility and a 30% cancel rate.
func DefaultMarketConfig() MarketConfig {
	return MarketConfig{
		BasePrice:     10000,
		PriceStdDev:   100,
		ArrivalRate:   1000,
		CancelRate:    0.30,
		MinQuantity:   1,
		MaxQuantity:   10000,
		PowerLawAlpha: 2.5,
		BuySellRatio:  0.5,
	}
}
