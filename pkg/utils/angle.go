package utils

import "math"

// NormalizeDeflection 将任意角度（度）换算为相对直立方向的绝对偏转角
//
// 先取绝对值并折算到 [0, 360)，大于 180 的值按 360 - angle 处理，
// 结果位于 [0, 180]。例如 350° 与 -10° 都得到 10°。
func NormalizeDeflection(degrees float64) float64 {
	a := math.Mod(math.Abs(degrees), 360)
	if a > 180 {
		a = 360 - a
	}
	return a
}

// Clamp 将 v 限制在 [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clamp01 将 v 限制在 [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// DirectionFromDegrees 返回角度对应的单位方向向量 (cos θ, sin θ)
func DirectionFromDegrees(degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}
