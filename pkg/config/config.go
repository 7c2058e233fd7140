package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
// A missing .env file is not an error; the environment alone is enough.
func Load[T any](cfg T) error {
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return err
	}

	return nil
}

// Config holds the configuration for the simulator application.
type Config struct {
	Symbols         []string      `env:"SYMBOLS" envDefault:"AAPL,GOOG,MSFT"` // Symbols to list, comma-separated
	Seed            int64         `env:"SEED" envDefault:"1"`                 // Base seed; worker i draws from Seed+i
	ReportInterval  time.Duration `env:"REPORT_INTERVAL" envDefault:"5s"`
	OrdersPerWorker int           `env:"ORDERS_PER_WORKER" envDefault:"0"` // 0 = run until stopped

	Market MarketConfig `envPrefix:"MARKET_"`
}

// MarketConfig holds the synthetic market model parameters.
type MarketConfig struct {
	BasePrice     int32   `env:"BASE_PRICE" envDefault:"10000"`
	PriceStdDev   float64 `env:"PRICE_STD_DEV" envDefault:"100"`
	ArrivalRate   float64 `env:"ARRIVAL_RATE" envDefault:"1000"`
	CancelRate    float64 `env:"CANCEL_RATE" envDefault:"0.30"`
	MinQuantity   uint32  `env:"MIN_QUANTITY" envDefault:"1"`
	MaxQuantity   uint32  `env:"MAX_QUANTITY" envDefault:"10000"`
	PowerLawAlpha float64 `env:"POWER_LAW_ALPHA" envDefault:"2.5"`
	BuySellRatio  float64 `env:"BUY_SELL_RATIO" envDefault:"0.5"`
}
