package entities

import (
	"fmt"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/decker502/cannonbox/pkg/ecs"
)

const (
	// ImpactEffectDuration 击中效果显示时长（秒）
	ImpactEffectDuration = 0.3
	// ImpactEffectRadius 击中效果圆环的最大半径（米）
	ImpactEffectRadius = 0.6
)

// ImpactEffectFactory 创建击中效果，供 ProjectileSystem 调用
type ImpactEffectFactory struct {
	em *ecs.EntityManager
}

// NewImpactEffectFactory 创建击中效果工厂
func NewImpactEffectFactory(em *ecs.EntityManager) *ImpactEffectFactory {
	return &ImpactEffectFactory{em: em}
}

// SpawnImpactEffect 在指定世界坐标生成击中效果
// 效果不参与物理模拟，由 LifetimeSystem 到期删除
func (f *ImpactEffectFactory) SpawnImpactEffect(x, y float64) (ecs.EntityID, error) {
	if f.em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := f.em.CreateEntity()
	f.em.AddComponent(id, &components.ImpactEffectComponent{
		X:         x,
		Y:         y,
		MaxRadius: ImpactEffectRadius,
	})
	f.em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: ImpactEffectDuration,
	})
	f.em.AddComponent(id, &components.SpriteComponent{
		Color:   ImpactEffectColor,
		Opacity: 1,
	})

	return id, nil
}
