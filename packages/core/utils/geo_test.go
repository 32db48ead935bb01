package utils

import (
	"math"
	"testing"
)

func TestHaversineMeters(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 48.8566, lon1: 2.3522,
			lat2: 48.8566, lon2: 2.3522,
			want: 0, tolerance: 0.001,
		},
		{
			name: "one degree of latitude",
			lat1: 48.0, lon1: 2.0,
			lat2: 49.0, lon2: 2.0,
			want: 111195, tolerance: 200,
		},
		{
			name: "paris to london",
			lat1: 48.8566, lon1: 2.3522,
			lat2: 51.5074, lon2: -0.1278,
			want: 343550, tolerance: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineMeters(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("HaversineMeters() = %f, want %f ± %f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineMetersSymmetric(t *testing.T) {
	forward := HaversineMeters(48.8566, 2.3522, 45.7640, 4.8357)
	backward := HaversineMeters(45.7640, 4.8357, 48.8566, 2.3522)

	if math.Abs(forward-backward) > 1e-6 {
		t.Errorf("distance not symmetric: %f vs %f", forward, backward)
	}
}
