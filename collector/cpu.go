package collector

import (
	"strings"

	"github.com/ftahirops/provertop/util"
)

// userHz is the kernel tick rate for /proc stat counters. Fixed at 100
// on every platform Go supports via sysconf(_SC_CLK_TCK).
const userHz = 100

// readProcTicks returns utime+stime for this process from /proc/self/stat.
// Returns 0 if the file cannot be read or parsed.
func readProcTicks() uint64 {
	content, err := util.ReadFileString("/proc/self/stat")
	if err != nil {
		return 0
	}
	// comm may contain spaces; fields are stable only after the last ")".
	closeIdx := strings.LastIndex(content, ")")
	if closeIdx < 0 || closeIdx+2 >= len(content) {
		return 0
	}
	fields := strings.Fields(content[closeIdx+2:])
	// After comm: state=0, ..., utime=11, stime=12.
	if len(fields) < 13 {
		return 0
	}
	return util.ParseUint64(fields[11]) + util.ParseUint64(fields[12])
}

// cpuPct computes the CPU utilization percentage between two samples.
func cpuPct(prevTicks, curTicks uint64, wallSec float64) float64 {
	if wallSec <= 0 || curTicks < prevTicks {
		return 0
	}
	cpuSec := float64(curTicks-prevTicks) / userHz
	pct := cpuSec / wallSec * 100
	if pct < 0 {
		return 0
	}
	return pct
}
