package entities

import (
	"image/color"

	"github.com/decker502/cannonbox/pkg/components"
)

// SoundSourceFactory 为实体创建音源
// 返回 (nil, nil) 表示不播放音效
type SoundSourceFactory interface {
	NewSource(clipName string) (components.SoundSource, error)
}

// 实体配色
var (
	BoxColor          = color.RGBA{R: 181, G: 126, B: 72, A: 255}
	CannonColor       = color.RGBA{R: 70, G: 78, B: 92, A: 255}
	ProjectileColor   = color.RGBA{R: 40, G: 40, B: 44, A: 255}
	ImpactEffectColor = color.RGBA{R: 255, G: 196, B: 64, A: 255}
)
