package shipping

import (
	"math"
	"testing"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		wantKm    float64
		tolerance float64
	}{
		{
			name: "same point",
			lat1: 10.7769, lng1: 106.7009,
			lat2: 10.7769, lng2: 106.7009,
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name: "Bến Thành to Tân Sơn Nhất (~7km)",
			lat1: 10.7725, lng1: 106.6980,
			lat2: 10.8188, lng2: 106.6520,
			wantKm:    7.2,
			tolerance: 1.0,
		},
		{
			name: "Hồ Chí Minh to Hà Nội (~1140km)",
			lat1: 10.7769, lng1: 106.7009,
			lat2: 21.0278, lng2: 105.8342,
			wantKm:    1140,
			tolerance: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("haversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	d1 := haversineKm(10.0, 106.0, 21.0, 105.8)
	d2 := haversineKm(21.0, 105.8, 10.0, 106.0)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{5.004, 5.0},
		{5.006, 5.01},
		{349.999, 350.0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
