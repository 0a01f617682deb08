package config

import (
	"math"
	"testing"
)

func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{"原点", 0, 0, WorldOriginScreenX, WorldOriginScreenY},
		{"右上", 1, 1, WorldOriginScreenX + PixelsPerMeter, WorldOriginScreenY - PixelsPerMeter},
		{"左侧", -2, 0, 0, WorldOriginScreenY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(tt.x, tt.y)
			if sx != tt.sx || sy != tt.sy {
				t.Errorf("WorldToScreen(%f, %f) = (%f, %f), want (%f, %f)", tt.x, tt.y, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	for _, p := range [][2]float64{{0, 0}, {3.5, 2.25}, {-1, 10}} {
		sx, sy := WorldToScreen(p[0], p[1])
		x, y := ScreenToWorld(sx, sy)
		if math.Abs(x-p[0]) > 1e-9 || math.Abs(y-p[1]) > 1e-9 {
			t.Errorf("round trip of %v gave (%f, %f)", p, x, y)
		}
	}
}

func TestVisibleWorldBounds(t *testing.T) {
	minX, minY, maxX, maxY := VisibleWorldBounds()
	if minX != -2 || maxX != 22 {
		t.Errorf("x range = [%f, %f], want [-2, 22]", minX, maxX)
	}
	if minY != -1.5 || maxY != 12 {
		t.Errorf("y range = [%f, %f], want [-1.5, 12]", minY, maxY)
	}

	// 默认关卡的箱子都应当可见
	for i, b := range DefaultBoxLayout() {
		if b.X < minX || b.X > maxX || b.Y < minY || b.Y > maxY {
			t.Errorf("box %d at (%f, %f) is off screen", i, b.X, b.Y)
		}
	}
}
