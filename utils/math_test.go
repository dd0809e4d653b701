package utils

import "testing"

func TestRoundFloat(t *testing.T) {
	cases := []struct {
		val       float64
		precision int
		want      float64
	}{
		{5.016, 2, 5.02},
		{5.004, 2, 5.0},
		{0.1 + 0.2, 2, 0.3},
		{0.125, 2, 0.13},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{100, 2, 100},
	}
	for _, c := range cases {
		if got := RoundFloat(c.val, c.precision); got != c.want {
			t.Fatalf("RoundFloat(%v, %d) = %v, want %v", c.val, c.precision, got, c.want)
		}
	}
}
