// Package topology provides read-only hardware topology queries: installed
// and active core / hardware-thread counts. It is an external collaborator
// in the sense described by the synchronization kernel's system overview —
// useful for sizing a [github.com/bjoernknafla/amp-go.ThreadArray], but not
// itself a synchronization primitive.
package topology

import (
	"github.com/bjoernknafla/amp-go/internal/host"
)

// ReturnCode is a two-value subset of the root package's return-code
// taxonomy, defined here (rather than imported) to keep this collaborator
// package free of a dependency on the primitives package. Its numeric
// values are its own: Unsupported here is not equal to the root package's
// Unsupported.
type ReturnCode int

const (
	// Success indicates the query succeeded.
	Success ReturnCode = iota
	// Unsupported indicates this host/build can't answer the query.
	Unsupported
)

// InstalledCoreCount returns the number of physical cores installed on the
// host, or [Unsupported] if this host/build can't determine it.
func InstalledCoreCount() (int, ReturnCode) {
	n, ok := host.InstalledCoreCount()
	if !ok {
		return 0, Unsupported
	}
	return n, Success
}

// InstalledHWThreadCount returns the number of hardware threads installed
// on the host, or [Unsupported] if this host/build can't determine it.
func InstalledHWThreadCount() (int, ReturnCode) {
	n, ok := host.InstalledHWThreadCount()
	if !ok {
		return 0, Unsupported
	}
	return n, Success
}

// ActiveCoreCount returns the number of physical cores available to this
// process. Always succeeds, falling back to the Go scheduler's own view of
// usable hardware where a finer-grained answer isn't available.
func ActiveCoreCount() int {
	return host.ActiveCoreCount()
}

// ActiveHWThreadCount returns the number of hardware threads available to
// this process.
func ActiveHWThreadCount() int {
	return host.ActiveHWThreadCount()
}
