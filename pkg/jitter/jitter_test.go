package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_Bounds(t *testing.T) {
	const d = time.Minute

	for range 100 {
		got := Duration(d, DefaultFactor)
		assert.GreaterOrEqual(t, got, d)
		assert.Less(t, got, d+time.Duration(DefaultFactor*float64(d)))
	}
}

func TestDuration_Passthrough(t *testing.T) {
	assert.Equal(t, time.Second, Duration(time.Second, 0))
	assert.Equal(t, time.Second, Duration(time.Second, -1))
	assert.Equal(t, time.Duration(0), Duration(0, DefaultFactor))
}

func TestDurationFrom(t *testing.T) {
	assert.Equal(t, 15*time.Second, durationFrom(10*time.Second, 1, func() float64 { return 0.5 }))
	assert.Equal(t, 10*time.Second, durationFrom(10*time.Second, 0.5, func() float64 { return 0 }))
}
