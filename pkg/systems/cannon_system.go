package systems

import (
	"log"
	"math"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/decker502/cannonbox/pkg/ecs"
	"github.com/decker502/cannonbox/pkg/physics"
	"github.com/decker502/cannonbox/pkg/utils"
)

const (
	// rotationDeadzone 输入幅度不超过该值时不旋转
	rotationDeadzone = 0.1
	// cooldownEpsilon 吸收时钟累加的浮点误差
	cooldownEpsilon = 1e-9
)

// CannonInput 炮台输入源
type CannonInput interface {
	// RotateUpHeld 逆时针旋转键是否按住
	RotateUpHeld() bool
	// RotateDownHeld 顺时针旋转键是否按住
	RotateDownHeld() bool
	// FireJustPressed 发射键是否在本帧按下（上升沿）
	FireJustPressed() bool
}

// ProjectileSpawner 炮弹工厂
// 返回的实体应带有 ProjectileComponent 与 BodyComponent
type ProjectileSpawner interface {
	SpawnProjectile(x, y, rotation float64) (ecs.EntityID, error)
}

// CannonSystem 处理炮台瞄准与发射
type CannonSystem struct {
	em      *ecs.EntityManager
	input   CannonInput
	spawner ProjectileSpawner

	// clock 系统时钟（秒），每帧末尾累加
	clock float64
}

// NewCannonSystem 创建炮台系统
// input 或 spawner 为 nil 时对应功能不可用（仅打印警告）
func NewCannonSystem(em *ecs.EntityManager, input CannonInput, spawner ProjectileSpawner) *CannonSystem {
	return &CannonSystem{
		em:      em,
		input:   input,
		spawner: spawner,
	}
}

// Clock 返回系统时钟（秒）
func (s *CannonSystem) Clock() float64 {
	return s.clock
}

// Update 读取输入，旋转炮管并处理发射
func (s *CannonSystem) Update(deltaTime float64) {
	defer func() { s.clock += deltaTime }()

	if s.input == nil {
		return
	}

	direction := 0.0
	if s.input.RotateUpHeld() {
		direction = 1
	} else if s.input.RotateDownHeld() {
		direction = -1
	}
	fire := s.input.FireJustPressed()

	for _, id := range ecs.GetEntitiesWith1[*components.CannonComponent](s.em) {
		cannon, ok := ecs.GetComponent[*components.CannonComponent](s.em, id)
		if !ok {
			continue
		}

		if math.Abs(direction) > rotationDeadzone {
			cannon.Rotation += cannon.RotationSpeed * deltaTime * direction
			cannon.Rotation = utils.Clamp(cannon.Rotation, cannon.MinAngle, cannon.MaxAngle)
			s.applyRotation(id, cannon)
		}

		if fire {
			s.Fire(id)
		}
	}
}

// Fire 尝试发射一枚炮弹
// 冷却未结束时静默丢弃（不排队），返回是否成功发射
func (s *CannonSystem) Fire(id ecs.EntityID) bool {
	cannon, ok := ecs.GetComponent[*components.CannonComponent](s.em, id)
	if !ok {
		return false
	}

	if cannon.HasFired && s.clock-cannon.LastShootTime+cooldownEpsilon < cannon.ShootCooldown {
		return false
	}

	if !s.shoot(id, cannon) {
		return false
	}

	cannon.LastShootTime = s.clock
	cannon.HasFired = true
	return true
}

// shoot 生成炮弹并施加发射冲量
func (s *CannonSystem) shoot(id ecs.EntityID, cannon *components.CannonComponent) bool {
	if s.spawner == nil || cannon.SpawnPoint == nil {
		log.Printf("[CannonSystem] Warning: cannon %d has no projectile spawner or spawn point", id)
		return false
	}

	dirX, dirY := utils.DirectionFromDegrees(cannon.Rotation)
	muzzleX := cannon.SpawnPoint.Pivot.X + dirX*cannon.SpawnPoint.BarrelLength
	muzzleY := cannon.SpawnPoint.Pivot.Y + dirY*cannon.SpawnPoint.BarrelLength

	projectileID, err := s.spawner.SpawnProjectile(muzzleX, muzzleY, cannon.Rotation)
	if err != nil {
		log.Printf("[CannonSystem] Failed to spawn projectile: %v", err)
		return false
	}

	if !ecs.HasComponent[*components.ProjectileComponent](s.em, projectileID) {
		log.Printf("[CannonSystem] Error: spawned entity %d has no ProjectileComponent, fire aborted", projectileID)
		s.em.DestroyEntity(projectileID)
		return false
	}

	bodyComp, ok := ecs.GetComponent[*components.BodyComponent](s.em, projectileID)
	if !ok || bodyComp.Body == nil {
		log.Printf("[CannonSystem] Error: spawned projectile %d has no physics body, fire aborted", projectileID)
		s.em.DestroyEntity(projectileID)
		return false
	}

	impulse := physics.Vec2{X: dirX, Y: dirY}.Scale(cannon.ShootForce)
	bodyComp.Body.ApplyImpulse(impulse)

	log.Printf("[CannonSystem] Cannon fired! Angle: %.1f°", cannon.Rotation)
	return true
}

// SetRotation 直接设置炮管角度（会被截断到允许范围）
func (s *CannonSystem) SetRotation(id ecs.EntityID, degrees float64) bool {
	cannon, ok := ecs.GetComponent[*components.CannonComponent](s.em, id)
	if !ok {
		return false
	}
	cannon.Rotation = utils.Clamp(degrees, cannon.MinAngle, cannon.MaxAngle)
	s.applyRotation(id, cannon)
	return true
}

// Rotation 返回炮管当前角度
func (s *CannonSystem) Rotation(id ecs.EntityID) (float64, bool) {
	cannon, ok := ecs.GetComponent[*components.CannonComponent](s.em, id)
	if !ok {
		return 0, false
	}
	return cannon.Rotation, true
}

// applyRotation 同步瞄准变换
func (s *CannonSystem) applyRotation(id ecs.EntityID, cannon *components.CannonComponent) {
	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.em, id); ok {
		transform.Rotation = cannon.Rotation
	}
}
