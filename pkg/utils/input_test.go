package utils

import "testing"

func TestClassifyTouch(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want TouchZone
	}{
		{"左上角抬高", 10, 10, TouchZoneAimUp},
		{"左下角压低", 10, 500, TouchZoneAimDown},
		{"左侧中线以下", 100, 270, TouchZoneAimDown},
		{"瞄准区右边界", 240, 100, TouchZoneFire},
		{"屏幕中央发射", 480, 270, TouchZoneFire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTouch(tt.x, tt.y, 960, 540); got != tt.want {
				t.Errorf("ClassifyTouch(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
