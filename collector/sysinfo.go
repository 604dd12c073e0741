package collector

import (
	"time"

	"github.com/ftahirops/provertop/model"
)

// ProcSampler samples CPU and RAM for the current process from /proc.
type ProcSampler struct {
	now func() time.Time // overridable for tests
}

// NewProcSampler creates a sampler reading /proc.
func NewProcSampler() *ProcSampler {
	return &ProcSampler{now: time.Now}
}

// Sample reads the current process metrics. CPU% is derived from the
// utime+stime delta against prev; the first sample reports 0. The
// returned peak is the max of the previous peak and the kernel's
// high-water mark, so it never decreases.
func (s *ProcSampler) Sample(prevPeak uint64, prev *model.SystemMetrics) model.SystemMetrics {
	now := s.now()
	mem := readProcMemory()
	ticks := readProcTicks()

	cur := model.SystemMetrics{
		RAMBytes:      mem.rss,
		PeakRAMBytes:  mem.peak,
		TotalRAMBytes: readTotalRAM(),
		ProcTicks:     ticks,
		SampledAt:     now,
	}
	if cur.PeakRAMBytes < prevPeak {
		cur.PeakRAMBytes = prevPeak
	}
	if cur.PeakRAMBytes < cur.RAMBytes {
		cur.PeakRAMBytes = cur.RAMBytes
	}

	if prev != nil && !prev.SampledAt.IsZero() {
		cur.CPUPct = cpuPct(prev.ProcTicks, ticks, now.Sub(prev.SampledAt).Seconds())
	}
	return cur
}
