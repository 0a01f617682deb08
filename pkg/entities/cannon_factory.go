package entities

import (
	"fmt"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/decker502/cannonbox/pkg/config"
	"github.com/decker502/cannonbox/pkg/ecs"
	"github.com/decker502/cannonbox/pkg/physics"
	"github.com/decker502/cannonbox/pkg/utils"
)

// NewCannon 创建炮台；初始角度被限制在 [MinAngle, MaxAngle]
func NewCannon(em *ecs.EntityManager, cfg config.CannonConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.MinAngle > cfg.MaxAngle {
		return 0, fmt.Errorf("invalid cannon angle range [%.1f, %.1f]", cfg.MinAngle, cfg.MaxAngle)
	}

	rotation := utils.Clamp(cfg.InitialAngle, cfg.MinAngle, cfg.MaxAngle)

	id := em.CreateEntity()
	em.AddComponent(id, &components.CannonComponent{
		Rotation:      rotation,
		RotationSpeed: cfg.RotationSpeed,
		MinAngle:      cfg.MinAngle,
		MaxAngle:      cfg.MaxAngle,
		ShootForce:    cfg.ShootForce,
		ShootCooldown: cfg.ShootCooldown,
		SpawnPoint: &components.SpawnPoint{
			Pivot:        physics.Vec2{X: cfg.PivotX, Y: cfg.PivotY},
			BarrelLength: cfg.BarrelLength,
		},
	})
	em.AddComponent(id, &components.TransformComponent{
		X:        cfg.PivotX,
		Y:        cfg.PivotY,
		Rotation: rotation,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Color:   CannonColor,
		Opacity: 1,
	})

	return id, nil
}
