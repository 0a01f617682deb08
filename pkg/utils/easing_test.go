package utils

import (
	"math"
	"testing"
)

func TestEaseLinear(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		if EaseLinear(v) != v {
			t.Errorf("EaseLinear(%f) = %f", v, EaseLinear(v))
		}
	}
}

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{0, 0},
		{0.5, 0.875},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.input); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EaseOutCubic(%f) = %f, want %f", tt.input, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	// 淡出：不透明度从 1 插值到 0
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 1},
		{0.25, 0.75},
		{0.5, 0.5},
		{1, 0},
	}
	for _, tt := range tests {
		if got := Lerp(1, 0, tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Lerp(1, 0, %f) = %f, want %f", tt.t, got, tt.want)
		}
	}
}
