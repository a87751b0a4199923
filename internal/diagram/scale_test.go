package diagram

import "testing"

func TestNiceCeiling(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 10},
		{-5, 10},
		{5, 10},
		{45, 50},
		{49, 50},
		{120, 200},
		{499, 500},
		{501, 1000},
		{1250, 1500},
	}
	for _, tt := range tests {
		if got := niceCeiling(tt.max); got != tt.want {
			t.Errorf("niceCeiling(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestLinTicks(t *testing.T) {
	got := linTicks(100, 5)
	want := []float64{0, 20, 40, 60, 80, 100}
	if len(got) != len(want) {
		t.Fatalf("len(linTicks) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("linTicks[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
