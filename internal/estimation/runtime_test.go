package estimation_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/estimation/mocks"
)

// stepClock returns a clock that advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		now := t0.Add(time.Duration(calls) * step)
		calls++
		return now
	}
}

func TestRuntimeEstimator_Project(t *testing.T) {
	t.Parallel()
	est := estimation.RuntimeEstimator{SampleUnits: 1000, Now: stepClock(10 * time.Millisecond)}

	p := est.Project(estimation.MonteCarlo{}, estimation.Params{Total: 1000, Seed: 1}, 500_000)

	require.True(t, p.Available)
	assert.Equal(t, uint64(1000), p.SampleUnits)
	assert.Equal(t, 10*time.Millisecond, p.SampleElapsed)
	assert.InDelta(t, 1e-5, p.PerUnit, 1e-12)
	assert.Equal(t, 5*time.Second, p.Projected.Round(time.Millisecond))
	assert.Equal(t, uint64(500_000), p.LargestChunk)
}

func TestRuntimeEstimator_ZeroElapsedIsUnavailable(t *testing.T) {
	t.Parallel()
	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	est := estimation.RuntimeEstimator{SampleUnits: 100, Now: func() time.Time { return frozen }}

	p := est.Project(estimation.Simpson{}, estimation.Params{Total: 100}, 1_000)

	assert.False(t, p.Available)
	assert.Zero(t, p.Projected)
}

func TestRuntimeEstimator_OverflowIsUnavailable(t *testing.T) {
	t.Parallel()
	est := estimation.RuntimeEstimator{SampleUnits: 1, Now: stepClock(time.Hour)}

	p := est.Project(estimation.Simpson{}, estimation.Params{Total: 2}, 1<<62)

	assert.False(t, p.Available)
}

func TestRuntimeEstimator_PanickingMethodIsUnavailable(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMethod(ctrl)
	m.EXPECT().Sample(gomock.Any()).DoAndReturn(func(estimation.WorkUnit) estimation.PartialResult {
		panic("sampler exploded")
	})

	est := estimation.RuntimeEstimator{SampleUnits: 10}
	var p estimation.Projection
	require.NotPanics(t, func() {
		p = est.Project(m, estimation.Params{}, 100)
	})
	assert.False(t, p.Available)
	assert.Equal(t, uint64(10), p.SampleUnits)
}

func TestRuntimeEstimator_ProbeUsesItsOwnStream(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMethod(ctrl)
	m.EXPECT().Sample(gomock.Any()).DoAndReturn(func(u estimation.WorkUnit) estimation.PartialResult {
		assert.Less(t, u.Index, 0, "probe must not reuse a real unit index")
		assert.Equal(t, uint64(estimation.DefaultSampleUnits), u.Count)
		return estimation.PartialResult{}
	})

	estimation.RuntimeEstimator{Now: stepClock(time.Millisecond)}.Project(m, estimation.Params{}, 1)
}
