package utils

import (
	"math"
	"testing"
)

func TestNormalizeDeflection(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"直立", 0, 0},
		{"小角度", 35, 35},
		{"正好180", 180, 180},
		{"超过180折回", 350, 10},
		{"负角度取绝对值", -10, 10},
		{"超过一圈", 395, 35},
		{"负的大角度", -350, 10},
		{"270度", 270, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDeflection(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeDeflection(%f) = %f, want %f", tt.input, got, tt.want)
			}
			if got < 0 || got > 180 {
				t.Errorf("NormalizeDeflection(%f) = %f out of [0,180]", tt.input, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(100, -45, 45) != 45 {
		t.Error("Clamp should cap at max")
	}
	if Clamp(-100, -45, 45) != -45 {
		t.Error("Clamp should cap at min")
	}
	if Clamp(10, -45, 45) != 10 {
		t.Error("Clamp should pass through values in range")
	}
	if Clamp01(1.5) != 1 || Clamp01(-0.5) != 0 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 mismatch")
	}
}

func TestDirectionFromDegrees(t *testing.T) {
	x, y := DirectionFromDegrees(90)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("DirectionFromDegrees(90) = (%f, %f), want (0, 1)", x, y)
	}
	x, y = DirectionFromDegrees(-45)
	if math.Abs(x-math.Sqrt2/2) > 1e-9 || math.Abs(y+math.Sqrt2/2) > 1e-9 {
		t.Errorf("DirectionFromDegrees(-45) = (%f, %f)", x, y)
	}
}
