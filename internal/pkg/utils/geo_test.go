package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistance(t *testing.T) {
	// Same point
	assert.Equal(t, 0.0, CalculateHaversineDistance(43.65107, -79.347015, 43.65107, -79.347015))

	// Toronto -> Ottawa, roughly 352 km
	d := CalculateHaversineDistance(43.65107, -79.347015, 45.42153, -75.697193)
	assert.InDelta(t, 352000, d, 5000)

	// Symmetry
	d2 := CalculateHaversineDistance(45.42153, -75.697193, 43.65107, -79.347015)
	assert.InDelta(t, d, d2, 0.0001)
}
