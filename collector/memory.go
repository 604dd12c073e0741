package collector

import "github.com/ftahirops/provertop/util"

// procMemory holds the memory figures for this process.
type procMemory struct {
	rss  uint64 // VmRSS
	peak uint64 // VmHWM, the kernel's own high-water mark
}

// readProcMemory reads VmRSS and VmHWM from /proc/self/status.
func readProcMemory() procMemory {
	kv, err := util.ParseKeyValueFile("/proc/self/status")
	if err != nil {
		return procMemory{}
	}
	return procMemory{
		rss:  util.ParseKB(kv["VmRSS"]),
		peak: util.ParseKB(kv["VmHWM"]),
	}
}

// readTotalRAM reads MemTotal from /proc/meminfo.
func readTotalRAM() uint64 {
	kv, err := util.ParseKeyValueFile("/proc/meminfo")
	if err != nil {
		return 0
	}
	return util.ParseKB(kv["MemTotal"])
}
