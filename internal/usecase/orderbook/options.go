package orderbook

// Options represents configuration options for the Orderbook.
type Options struct {
	// CompactionRatio is the tombstoned/total slot ratio above which a
	// tombstoning operation triggers a synchronous compaction pass.
	CompactionRatio float64
}

// DefaultOptions returns the default orderbook options.
func DefaultOptions() *Options {
	return &Options{
		CompactionRatio: 0.25,
	}
}
