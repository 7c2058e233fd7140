package simulator

import "time"

// Options represents configuration options for the Simulator.
type Options struct {
	// ReportInterval is how often the reporter logs run statistics.
	ReportInterval time.Duration
	// OrdersPerWorker caps how many orders each symbol worker submits.
	// Zero means run until stopped.
	OrdersPerWorker int
	// RestingWindow is how many of its recent resting order ids a worker
	// remembers as cancel candidates.
	RestingWindow int
}

// DefaultOptions returns the default simulator options.
func DefaultOptions() *Options {
	return &Options{
		ReportInterval:  5 * time.Second,
		OrdersPerWorker: 0,
		RestingWindow:   128,
	}
}
