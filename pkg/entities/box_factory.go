package entities

import (
	"fmt"
	"log"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/decker502/cannonbox/pkg/config"
	"github.com/decker502/cannonbox/pkg/ecs"
	"github.com/decker502/cannonbox/pkg/physics"
)

// NewBox 创建一个可击倒的箱子
//
// 参数:
//   - em: 实体管理器
//   - world: 物理世界
//   - sounds: 音源工厂，可为 nil（无撞击音效）
//   - cfg: 箱子参数
//   - at: 初始位姿
//
// 返回:
//   - ecs.EntityID: 箱子实体ID，失败返回 0
//   - error: 创建刚体失败时返回错误
func NewBox(em *ecs.EntityManager, world *physics.World, sounds SoundSourceFactory, cfg config.BoxConfig, at config.BoxPlacement) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if world == nil {
		return 0, fmt.Errorf("physics world cannot be nil")
	}

	id := em.CreateEntity()

	body, err := world.AddBox(id, physics.BodyDef{
		Layer:          physics.LayerBox,
		Mass:           cfg.Mass,
		LinearDamping:  cfg.LinearDamping,
		AngularDamping: cfg.AngularDamping,
		GravityScale:   cfg.GravityScale,
		Friction:       cfg.Friction,
		Elasticity:     cfg.Bounciness,
	}, at.X, at.Y, cfg.Width, cfg.Height, at.Rotation)
	if err != nil {
		em.DestroyEntity(id)
		return 0, fmt.Errorf("failed to create box body: %w", err)
	}

	em.AddComponent(id, &components.BoxComponent{
		ToppleThreshold: cfg.ToppleThreshold,
		SettleThreshold: cfg.SettleThreshold,
		SettleTime:      cfg.SettleTime,
		FadeOutDuration: cfg.FadeOutDuration,
		PointValue:      cfg.PointValue,
		State:           components.BoxUpright,
	})
	em.AddComponent(id, &components.BodyComponent{
		Body:   body,
		Layer:  physics.LayerBox,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Color:   BoxColor,
		Opacity: 1,
	})
	em.AddComponent(id, &components.SoundComponent{
		Impact: newSource(sounds, cfg.ImpactSound),
	})

	return id, nil
}

// newSource 创建音源；失败只记录日志，实体照常创建
func newSource(sounds SoundSourceFactory, clip string) components.SoundSource {
	if sounds == nil || clip == "" {
		return nil
	}
	src, err := sounds.NewSource(clip)
	if err != nil {
		log.Printf("[EntityFactory] Warning: Failed to create sound %q: %v", clip, err)
		return nil
	}
	return src
}
