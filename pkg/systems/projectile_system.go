package systems

import (
	"log"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/decker502/cannonbox/pkg/ecs"
	"github.com/decker502/cannonbox/pkg/physics"
)

// EffectSpawner 击中效果工厂
type EffectSpawner interface {
	SpawnImpactEffect(x, y float64) (ecs.EntityID, error)
}

// ProjectileSystem 处理炮弹碰撞
//
// 每次碰撞都播放音效/生成击中效果；只有撞到目标层（箱子）时才安排销毁，
// 销毁延迟为撞击音效的时长，避免声音被截断。
// 超时销毁由 LifetimeSystem 负责。
type ProjectileSystem struct {
	em      *ecs.EntityManager
	effects EffectSpawner
}

// NewProjectileSystem 创建炮弹系统，effects 可为 nil
func NewProjectileSystem(em *ecs.EntityManager, effects EffectSpawner) *ProjectileSystem {
	return &ProjectileSystem{
		em:      em,
		effects: effects,
	}
}

// OnCollision 实现 physics.CollisionListener
func (s *ProjectileSystem) OnCollision(self ecs.EntityID, c physics.Collision) {
	projectile, ok := ecs.GetComponent[*components.ProjectileComponent](s.em, self)
	if !ok {
		return
	}
	projectile.HitCount++

	soundLength := s.playImpact(self)
	if projectile.SpawnImpactEffect {
		s.spawnEffect(self)
	}

	if !projectile.DestroyOnCollision || c.OtherLayer != projectile.TargetLayer {
		return
	}
	if projectile.DestroyScheduled {
		return
	}

	s.scheduleDestroy(self, soundLength)
	projectile.DestroyScheduled = true
	log.Printf("[ProjectileSystem] Projectile %d hit %s %d, destroying in %.2fs", self, c.OtherLayer, c.Other, soundLength)
}

// playImpact 播放撞击音效，返回音效时长（无音效时为 0）
func (s *ProjectileSystem) playImpact(id ecs.EntityID) float64 {
	sound, ok := ecs.GetComponent[*components.SoundComponent](s.em, id)
	if !ok || sound.Impact == nil {
		return 0
	}
	if !sound.Impact.IsPlaying() {
		sound.Impact.PlayOneShot(1)
	}
	return sound.Impact.Length()
}

func (s *ProjectileSystem) spawnEffect(id ecs.EntityID) {
	if s.effects == nil {
		return
	}
	bodyComp, ok := ecs.GetComponent[*components.BodyComponent](s.em, id)
	if !ok || bodyComp.Body == nil {
		return
	}
	pos := bodyComp.Body.Position()
	if _, err := s.effects.SpawnImpactEffect(pos.X, pos.Y); err != nil {
		log.Printf("[ProjectileSystem] Failed to spawn impact effect: %v", err)
	}
}

// scheduleDestroy 把销毁时间提前到 delay 秒之后（已更早到期则不变）
func (s *ProjectileSystem) scheduleDestroy(id ecs.EntityID, delay float64) {
	if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.em, id); ok {
		lifetime.ShortenTo(delay)
		return
	}
	s.em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: delay})
}
