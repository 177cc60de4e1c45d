package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageMetrics(t *testing.T) {
	s, err := NewStorage(1024)
	require.NoError(t, err)

	m := s.Metrics()
	assert.Equal(t, StorageMetrics{Capacity: 1024, Remaining: 1024}, m)

	_, err = s.Allocate(100, 1, 1)
	require.NoError(t, err)
	_, err = s.Allocate(1, 64, 200)
	require.NoError(t, err)

	m = s.Metrics()
	assert.Equal(t, s.Used(), m.Used)
	assert.Equal(t, 1024, m.Used+m.Remaining)
	assert.Equal(t, 300+m.Padding, m.Used)
	assert.Equal(t, 2, m.Allocs)
	assert.Equal(t, 2, m.Live())
	assert.InDelta(t, float64(m.Used)/1024, m.Utilization, 1e-9)
	assert.True(t, m.Utilization > 0 && m.Utilization <= 1)
}

func TestStorageMetricsLive(t *testing.T) {
	s, err := NewStorage(256)
	require.NoError(t, err)

	p, err := s.Allocate(1, 8, 8)
	require.NoError(t, err)
	q, err := s.Allocate(1, 8, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Metrics().Live())

	s.Deallocate(p, 1, 8)
	s.Deallocate(q, 1, 8)
	assert.Zero(t, s.Metrics().Live())
}

func TestUtilizationAfterRelease(t *testing.T) {
	s, err := NewStorage(64)
	require.NoError(t, err)
	require.NoError(t, s.Release())
	assert.Zero(t, s.Utilization())
}
