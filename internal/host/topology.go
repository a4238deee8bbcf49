package host

// InstalledCoreCount returns the number of physical cores installed, or
// false if this host/build can't determine it.
func InstalledCoreCount() (int, bool) { return installedCoreCount() }

// InstalledHWThreadCount returns the number of hardware threads installed,
// or false if this host/build can't determine it.
func InstalledHWThreadCount() (int, bool) { return installedHWThreadCount() }

// ActiveCoreCount returns the number of physical cores available to this
// process.
func ActiveCoreCount() int { return activeCoreCount() }

// ActiveHWThreadCount returns the number of hardware threads available to
// this process.
func ActiveHWThreadCount() int { return activeHWThreadCount() }
