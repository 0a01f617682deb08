package components

// ImpactEffectComponent 击中效果（短暂扩散的圆环）
type ImpactEffectComponent struct {
	X, Y      float64 // 世界坐标
	MaxRadius float64 // 最大半径（米）
}
