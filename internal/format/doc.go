// Package format holds pure formatting helpers for durations and numbers.
package format
