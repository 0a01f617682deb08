package entities

import (
	"fmt"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/decker502/cannonbox/pkg/config"
	"github.com/decker502/cannonbox/pkg/ecs"
	"github.com/decker502/cannonbox/pkg/physics"
)

// ProjectileFactory 创建炮弹实体，供 CannonSystem 发射时调用
type ProjectileFactory struct {
	em     *ecs.EntityManager
	world  *physics.World
	sounds SoundSourceFactory
	cfg    config.ProjectileConfig
}

// NewProjectileFactory 创建炮弹工厂
func NewProjectileFactory(em *ecs.EntityManager, world *physics.World, sounds SoundSourceFactory, cfg config.ProjectileConfig) *ProjectileFactory {
	return &ProjectileFactory{
		em:     em,
		world:  world,
		sounds: sounds,
		cfg:    cfg,
	}
}

// SpawnProjectile 在炮口位置创建静止的炮弹
// 初速度由调用方施加冲量得到；圆形刚体不使用 rotation
//
// 返回:
//   - ecs.EntityID: 炮弹实体ID
//   - error: 创建刚体失败时返回错误
func (f *ProjectileFactory) SpawnProjectile(x, y, rotation float64) (ecs.EntityID, error) {
	if f.em == nil || f.world == nil {
		return 0, fmt.Errorf("projectile factory is not initialized")
	}

	id := f.em.CreateEntity()

	body, err := f.world.AddCircle(id, physics.BodyDef{
		Layer:        physics.LayerProjectile,
		Mass:         f.cfg.Mass,
		GravityScale: f.cfg.GravityScale,
		Friction:     f.cfg.Friction,
		Elasticity:   f.cfg.Bounciness,
	}, x, y, f.cfg.Radius)
	if err != nil {
		f.em.DestroyEntity(id)
		return 0, fmt.Errorf("failed to create projectile body: %w", err)
	}

	f.em.AddComponent(id, &components.BodyComponent{
		Body:   body,
		Layer:  physics.LayerProjectile,
		Radius: f.cfg.Radius,
	})
	f.em.AddComponent(id, &components.ProjectileComponent{
		DestroyOnCollision: f.cfg.DestroyOnCollision,
		TargetLayer:        physics.LayerBox,
		SpawnImpactEffect:  f.cfg.ImpactEffect,
	})
	f.em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: f.cfg.Lifetime,
	})
	f.em.AddComponent(id, &components.SpriteComponent{
		Color:   ProjectileColor,
		Opacity: 1,
	})
	f.em.AddComponent(id, &components.SoundComponent{
		Impact: newSource(f.sounds, f.cfg.ImpactSound),
	})

	return id, nil
}
