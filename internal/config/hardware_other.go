//go:build !linux

package config

import "runtime"

// AvailableCPUs returns runtime.NumCPU.
func AvailableCPUs() int {
	return runtime.NumCPU()
}
