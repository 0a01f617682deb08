package components

import "image/color"

// Renderer 可设置不透明度的渲染句柄
type Renderer interface {
	SetOpacity(alpha float64)
}

// SpriteComponent 存储实体的视觉表现（纯色形状）
// 实现 Renderer，渲染系统读取 Color 与 Opacity 绘制
type SpriteComponent struct {
	Color   color.RGBA
	Opacity float64 // 0.0 ~ 1.0
}

// SetOpacity 设置不透明度，超出范围的值会被截断
func (s *SpriteComponent) SetOpacity(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	s.Opacity = alpha
}
