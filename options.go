package tempuscache

import "github.com/rs/zerolog"

const (
	defaultMaxMemory = 100 * 1024 * 1024 // 100 MiB
	defaultMaxKeys   = 10000
)

/*
Option configures a Cache at construction time, following the
functional-options pattern used for configuring cleanup behavior and
other runtime knobs: New() accepts a variadic list of Options so adding
a new knob never changes the constructor signature.
*/
type Option func(*Cache)

// WithMaxMemory sets the byte budget. Zero means every Set evicts
// everything down to the key just inserted; negative is rejected by New
// with ErrInvalidConfig.
func WithMaxMemory(bytes int64) Option {
	return func(c *Cache) { c.maxMemory = bytes }
}

// WithMaxKeys sets the key-count budget enforced by the Recency Index.
// Zero or negative means unbounded key count (budget enforcement then
// relies on maxMemory alone).
func WithMaxKeys(n int) Option {
	return func(c *Cache) { c.maxKeys = n }
}

// WithClock injects a Clock, overriding the default SystemClock. Tests
// use this to supply a *ManualClock.
func WithClock(clock Clock) Option {
	return func(c *Cache) { c.clock = clock }
}

// WithLogger overrides the zero-value no-op logger with a configured
// zerolog.Logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// WithMetrics attaches a MetricsRecorder (e.g. *metrics.Collector) that
// observes every operation. Metrics are a pure side channel: a nil
// recorder (the default) disables them without changing any return
// value.
func WithMetrics(recorder MetricsRecorder) Option {
	return func(c *Cache) { c.metrics = recorder }
}
