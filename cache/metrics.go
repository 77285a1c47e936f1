package cache

// Metrics exposes cache-level observability hooks.
// Hooks are called after the cache lock is released, so implementations
// must be goroutine-safe. A NoopMetrics implementation is used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict()
	Size(entries int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Hit()     {}
func (NoopMetrics) Miss()    {}
func (NoopMetrics) Evict()   {}
func (NoopMetrics) Size(int) {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
