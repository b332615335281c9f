package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourlyProjection(t *testing.T) {
	points := HourlyProjection(480.60)
	assert.Len(t, points, 24)

	assert.Equal(t, 0, points[0].Hour)
	assert.Equal(t, 0.0, points[0].KWH)

	// sin(π/2)² == 1 so the noon point carries the full total
	assert.Equal(t, 12, points[12].Hour)
	assert.InDelta(t, 480.60, points[12].KWH, 1e-9)

	// symmetric around noon
	for h := 1; h < 12; h++ {
		assert.InDelta(t, points[h].KWH, points[24-h].KWH, 1e-9, "hour %d", h)
	}

	for _, p := range points {
		assert.GreaterOrEqual(t, p.KWH, 0.0)
	}
}

func TestHourlyProjectionZeroTotal(t *testing.T) {
	for _, p := range HourlyProjection(0) {
		assert.Equal(t, 0.0, p.KWH)
	}
}
