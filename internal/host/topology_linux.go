//go:build linux

package host

import (
	"bufio"
	"os"
	"runtime"
	"strings"
)

// Linux topology: parse /proc/cpuinfo, counting distinct "processor"
// entries for the hardware-thread count and distinct "core id" values for
// the physical-core count. Grounded on xyproto-flapc/parallel.go's
// GetNumCPUCores, which takes the same /proc/cpuinfo-parsing approach.

func installedHWThreadCount() (int, bool) {
	n, ok := countCPUInfoField("processor")
	return n, ok
}

func installedCoreCount() (int, bool) {
	n, ok := countCPUInfoField("core id")
	if !ok || n == 0 {
		return 0, false
	}
	return n, true
}

func activeHWThreadCount() int {
	return runtime.NumCPU()
}

func activeCoreCount() int {
	if n, ok := installedCoreCount(); ok {
		return n
	}
	return runtime.NumCPU()
}

// countCPUInfoField counts the number of distinct values seen for the
// given "/proc/cpuinfo" field across all processor blocks.
func countCPUInfoField(field string) (int, bool) {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return 0, false
	}
	defer f.Close()

	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key != field {
			continue
		}
		val := strings.TrimSpace(parts[1])
		seen[val] = struct{}{}
	}
	if len(seen) == 0 {
		return 0, false
	}
	return len(seen), true
}
