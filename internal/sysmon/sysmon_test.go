package sysmon

import (
	"context"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSampleContext_CountsCPUs(t *testing.T) {
	s := SampleContext(context.Background())
	if s.LogicalCPUs < 1 {
		t.Errorf("LogicalCPUs = %d, expected at least one on a running system", s.LogicalCPUs)
	}
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}
