package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		expectedKm float64
		toleranceKm float64
	}{
		{"SamePoint", 55.7558, 37.6173, 55.7558, 37.6173, 0, 0.001},
		{"MoscowToSaintPetersburg", 55.7558, 37.6173, 59.9343, 30.3351, 634, 5},
		{"LondonToParis", 51.5074, -0.1278, 48.8566, 2.3522, 344, 5},
		{"AcrossEquator", 1.0, 0.0, -1.0, 0.0, 222.4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expectedKm, got, tt.toleranceKm)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	d1 := Distance(55.7558, 37.6173, 48.8566, 2.3522)
	d2 := Distance(48.8566, 2.3522, 55.7558, 37.6173)
	assert.InDelta(t, d1, d2, 1e-9)
}
