package geo

import (
	"math"
	"testing"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	if d := DistanceKm(12.9716, 77.5946, 12.9716, 77.5946); d != 0 {
		t.Errorf("distance between identical points = %f, want 0", d)
	}
}

func TestDistanceKmOneDegree(t *testing.T) {
	// One degree of separation on a single axis is exactly the 111 km scale.
	if d := DistanceKm(0, 0, 1, 0); math.Abs(d-111.0) > 1e-9 {
		t.Errorf("one degree latitude = %f km, want 111", d)
	}
	if d := DistanceKm(0, 0, 0, 1); math.Abs(d-111.0) > 1e-9 {
		t.Errorf("one degree longitude = %f km, want 111", d)
	}
}

func TestDistanceKmPythagorean(t *testing.T) {
	// 3-4-5 triangle in degree space: hypotenuse 0.05 degrees = 5.55 km.
	d := DistanceKm(0, 0, 0.03, 0.04)
	if math.Abs(d-5.55) > 1e-9 {
		t.Errorf("distance = %f km, want 5.55", d)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(12.9716, 77.5946, 12.8456, 77.6603)
	b := DistanceKm(12.8456, 77.6603, 12.9716, 77.5946)
	if a != b {
		t.Errorf("distance is not symmetric: %f vs %f", a, b)
	}
}
