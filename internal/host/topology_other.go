//go:build !linux

package host

import "runtime"

// Windows and any other GOOS: this pack has no SMBIOS/WMI/hwloc binding to
// ground a true installed-vs-active distinction, so active counts use
// runtime.NumCPU (the Go scheduler's own view of usable hardware threads)
// and installed counts are reported unsupported rather than guessed.

func installedHWThreadCount() (int, bool) { return 0, false }
func installedCoreCount() (int, bool)     { return 0, false }
func activeHWThreadCount() int            { return runtime.NumCPU() }
func activeCoreCount() int                { return runtime.NumCPU() }
