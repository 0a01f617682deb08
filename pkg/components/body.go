package components

import "github.com/decker502/cannonbox/pkg/physics"

// BodyComponent 实体的刚体句柄
type BodyComponent struct {
	Body  physics.Body
	Layer physics.Layer

	// 形状尺寸（米），渲染使用
	Width  float64
	Height float64
	Radius float64
}
