package collector

import "github.com/ftahirops/provertop/model"

// Sampler supplies one resource sample per tick. It receives the previous
// peak and the previous sample so it can compute CPU% from counter deltas
// and keep the peak monotone. Implementations may block briefly on OS
// calls; the engine still enforces peak monotonicity itself.
type Sampler interface {
	Sample(prevPeak uint64, prev *model.SystemMetrics) model.SystemMetrics
}
