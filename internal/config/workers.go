package config

// ResolveWorkers returns the pool size for a configured cap: the cap itself,
// limited to the available hardware concurrency. A cap of zero or less means
// "use every available CPU". The result is always at least 1.
func ResolveWorkers(limit int) int {
	return resolveWorkers(limit, AvailableCPUs())
}

func resolveWorkers(limit, available int) int {
	if available < 1 {
		available = 1
	}
	if limit <= 0 || limit > available {
		return available
	}
	return limit
}
