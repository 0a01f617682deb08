package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/decker502/cannonbox/pkg/config"
	"github.com/decker502/cannonbox/pkg/ecs"
	"github.com/decker502/cannonbox/pkg/entities"
	"github.com/decker502/cannonbox/pkg/game"
	"github.com/decker502/cannonbox/pkg/physics"
	"github.com/decker502/cannonbox/pkg/systems"
)

// SimulationOptions 创建模拟所需的协作者
type SimulationOptions struct {
	Config *config.GameConfig  // nil 时使用默认配置
	Input  systems.CannonInput // 可为 nil（只能通过 FireCannon 发射）
	Score  systems.ScoreSink   // 可为 nil（不计分）
	Audio  *game.AudioManager  // 可为 nil（无声）
}

// Simulation 不依赖窗口的游戏核心
//
// 持有实体管理器、物理世界与全部逻辑系统，每帧按固定顺序推进：
// 炮台 → 物理 → 箱子 → 生命周期 → 清理删除的实体。
// GameScene 在其上叠加渲染与输入，cmd/verify_topple 直接驱动它。
type Simulation struct {
	em    *ecs.EntityManager
	world *physics.World
	audio *game.AudioManager

	cannon ecs.EntityID

	cannonSystem     *systems.CannonSystem
	boxSystem        *systems.BoxSystem
	projectileSystem *systems.ProjectileSystem
	lifetimeSystem   *systems.LifetimeSystem
}

// NewSimulation 搭建关卡：地面、炮台与配置中的全部箱子
func NewSimulation(opts SimulationOptions) (*Simulation, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	em := ecs.NewEntityManager()
	world := physics.NewWorld(physics.WorldOptions{
		Gravity:    cfg.Physics.Gravity,
		Substeps:   cfg.Physics.Substeps,
		Iterations: uint(cfg.Physics.Iterations),
	})
	world.AddGround(-config.GroundHalfWidth, config.GroundHalfWidth, cfg.Physics.GroundY, cfg.Physics.GroundFriction)

	var sounds entities.SoundSourceFactory
	if opts.Audio != nil {
		sounds = opts.Audio
	}

	s := &Simulation{
		em:    em,
		world: world,
		audio: opts.Audio,
	}

	projectiles := entities.NewProjectileFactory(em, world, sounds, cfg.Projectile)
	s.cannonSystem = systems.NewCannonSystem(em, opts.Input, projectiles)
	s.boxSystem = systems.NewBoxSystem(em, opts.Score)
	s.projectileSystem = systems.NewProjectileSystem(em, entities.NewImpactEffectFactory(em))
	s.lifetimeSystem = systems.NewLifetimeSystem(em)

	world.SetListener(physics.LayerBox, s.boxSystem)
	world.SetListener(physics.LayerProjectile, s.projectileSystem)
	em.AddDestroyHook(s.onEntityDestroyed)

	cannon, err := entities.NewCannon(em, cfg.Cannon)
	if err != nil {
		return nil, fmt.Errorf("failed to create cannon: %w", err)
	}
	s.cannon = cannon

	for i, placement := range cfg.Level.Boxes {
		if _, err := entities.NewBox(em, world, sounds, cfg.Box, placement); err != nil {
			return nil, fmt.Errorf("failed to create box %d: %w", i, err)
		}
	}

	log.Printf("[Simulation] Level ready: %d boxes, cannon at (%.1f, %.1f)",
		len(cfg.Level.Boxes), cfg.Cannon.PivotX, cfg.Cannon.PivotY)
	return s, nil
}

// onEntityDestroyed 实体被移除前释放刚体与音源
func (s *Simulation) onEntityDestroyed(id ecs.EntityID) {
	s.world.Remove(id)

	if sound, ok := ecs.GetComponent[*components.SoundComponent](s.em, id); ok && sound.Impact != nil {
		s.audio.Release(sound.Impact)
	}
}

// Update 推进一帧
func (s *Simulation) Update(deltaTime float64) {
	s.cannonSystem.Update(deltaTime)
	s.world.Step(deltaTime)
	s.boxSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.em.RemoveMarkedEntities()
}

// FireCannon 直接触发一次发射（受冷却限制）
func (s *Simulation) FireCannon() bool {
	return s.cannonSystem.Fire(s.cannon)
}

// SetCannonRotation 设置炮管角度（会被限制在允许范围内）
func (s *Simulation) SetCannonRotation(degrees float64) {
	s.cannonSystem.SetRotation(s.cannon, degrees)
}

// CannonRotation 当前炮管角度
func (s *Simulation) CannonRotation() float64 {
	rotation, _ := s.cannonSystem.Rotation(s.cannon)
	return rotation
}

// Boxes 仍存在的箱子（按 ID 升序）
func (s *Simulation) Boxes() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.BoxComponent](s.em)
}

// BoxState 箱子的当前状态
func (s *Simulation) BoxState(id ecs.EntityID) (components.BoxState, bool) {
	box, ok := ecs.GetComponent[*components.BoxComponent](s.em, id)
	if !ok {
		return components.BoxRemoved, false
	}
	return box.State, true
}

// Projectiles 仍存在的炮弹
func (s *Simulation) Projectiles() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.ProjectileComponent](s.em)
}

// EntityManager 供渲染系统读取
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.em
}

// World 物理世界
func (s *Simulation) World() *physics.World {
	return s.world
}

// BoxSystem 箱子系统（施加冲量、修改阈值等）
func (s *Simulation) BoxSystem() *systems.BoxSystem {
	return s.boxSystem
}
