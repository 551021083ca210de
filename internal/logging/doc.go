// Package logging provides a unified logging interface for the pi estimator.
// It abstracts the zerolog backend so components log structured fields
// without importing it directly.
package logging
