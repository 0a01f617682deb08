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
	// ImpactSoundMinSpeed 触发箱子撞击音效的最小相对速度（米/秒）
	ImpactSoundMinSpeed = 2.0
	// ImpactSoundFullSpeed 音量达到 1.0 时的相对速度（米/秒）
	ImpactSoundFullSpeed = 10.0
)

// ScoreSink 接收得分
type ScoreSink interface {
	AddScore(points int)
}

// BoxSystem 驱动箱子的生命周期状态机
//
// 每帧读取刚体的旋转与速度：
//   - 偏转角首次超过阈值 → Toppled，加分一次
//   - 倾倒后持续静止 SettleTime 秒 → Settled，开始淡出
//   - 淡出 FadeOutDuration 秒后删除实体
//
// 同时作为 LayerBox 的碰撞监听器播放撞击音效。
type BoxSystem struct {
	em        *ecs.EntityManager
	scoreSink ScoreSink
}

// NewBoxSystem 创建箱子系统
//
// 参数:
//   - em: 实体管理器
//   - scoreSink: 得分接收者，可为 nil（不计分）
func NewBoxSystem(em *ecs.EntityManager, scoreSink ScoreSink) *BoxSystem {
	return &BoxSystem{
		em:        em,
		scoreSink: scoreSink,
	}
}

// Update 推进所有箱子一帧
func (s *BoxSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.BoxComponent, *components.BodyComponent](s.em)

	for _, id := range entities {
		box, ok := ecs.GetComponent[*components.BoxComponent](s.em, id)
		if !ok {
			continue
		}
		bodyComp, ok := ecs.GetComponent[*components.BodyComponent](s.em, id)
		if !ok || bodyComp.Body == nil {
			continue
		}

		switch box.State {
		case components.BoxRemoved:
			continue
		case components.BoxFadingOut:
			// 淡出只由时间驱动，物理事件不会打断
			s.updateFade(id, box, deltaTime)
			continue
		}

		s.checkToppled(id, box, bodyComp.Body)

		if box.HasBeenToppled && !box.IsSettled {
			s.checkSettled(id, box, bodyComp.Body, deltaTime)
		}
	}
}

// checkToppled 检测倾倒
func (s *BoxSystem) checkToppled(id ecs.EntityID, box *components.BoxComponent, body physics.Body) {
	box.Deflection = utils.NormalizeDeflection(body.RotationDegrees())

	wasToppled := box.IsToppled
	box.IsToppled = box.Deflection > box.ToppleThreshold

	if box.IsToppled && !wasToppled && !box.HasBeenToppled {
		s.onToppled(id, box)
	}
}

// onToppled 首次倾倒：记录状态并加分
func (s *BoxSystem) onToppled(id ecs.EntityID, box *components.BoxComponent) {
	box.HasBeenToppled = true
	box.State = components.BoxToppled

	log.Printf("[BoxSystem] Box %d toppled! +%d points (deflection %.1f°)", id, box.PointValue, box.Deflection)

	if s.scoreSink != nil {
		s.scoreSink.AddScore(box.PointValue)
	}
	// 不立即淡出，等待静止
}

// checkSettled 检测倾倒后的静止
func (s *BoxSystem) checkSettled(id ecs.EntityID, box *components.BoxComponent, body physics.Body, deltaTime float64) {
	v := body.Velocity()
	speed := math.Hypot(v.X, v.Y)
	angularSpeed := math.Abs(body.AngularVelocityDegrees())

	isStill := speed < box.SettleThreshold && angularSpeed < box.SettleThreshold
	if !isStill {
		// 重新运动则清零
		box.SettleTimer = 0
		return
	}

	box.SettleTimer += deltaTime
	if box.SettleTimer >= box.SettleTime {
		box.IsSettled = true
		box.State = components.BoxSettled
		log.Printf("[BoxSystem] Box %d has settled - starting fade out", id)
		s.beginFade(id, box)
	}
}

// beginFade 进入淡出状态
func (s *BoxSystem) beginFade(id ecs.EntityID, box *components.BoxComponent) {
	s.em.AddComponent(id, &components.FadeComponent{
		Duration: box.FadeOutDuration,
		Alpha:    1,
	})
	box.State = components.BoxFadingOut
}

// updateFade 推进淡出；无渲染组件时仅计时
func (s *BoxSystem) updateFade(id ecs.EntityID, box *components.BoxComponent, deltaTime float64) {
	fade, ok := ecs.GetComponent[*components.FadeComponent](s.em, id)
	if !ok {
		s.beginFade(id, box)
		fade, _ = ecs.GetComponent[*components.FadeComponent](s.em, id)
	}

	fade.Elapsed += deltaTime
	progress := 1.0
	if fade.Duration > 0 {
		progress = utils.Clamp01(fade.Elapsed / fade.Duration)
	}
	fade.Alpha = utils.Lerp(1, 0, progress)

	if renderer := s.rendererOf(id); renderer != nil {
		renderer.SetOpacity(fade.Alpha)
	}

	if fade.IsDone() {
		box.State = components.BoxRemoved
		s.em.DestroyEntity(id)
		log.Printf("[BoxSystem] Box %d faded out and removed", id)
	}
}

func (s *BoxSystem) rendererOf(id ecs.EntityID) components.Renderer {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id)
	if !ok || sprite == nil {
		return nil
	}
	return sprite
}

// OnCollision 实现 physics.CollisionListener
// 撞击足够猛烈且当前未在播放时播放音效，音量与相对速度成正比
func (s *BoxSystem) OnCollision(self ecs.EntityID, c physics.Collision) {
	sound, ok := ecs.GetComponent[*components.SoundComponent](s.em, self)
	if !ok || sound.Impact == nil {
		return
	}
	if c.RelativeSpeed <= ImpactSoundMinSpeed {
		return
	}
	if sound.Impact.IsPlaying() {
		return
	}
	sound.Impact.PlayOneShot(utils.Clamp01(c.RelativeSpeed / ImpactSoundFullSpeed))
}

// ========== 外部控制接口 ==========

// ApplyImpulse 对箱子质心施加冲量
func (s *BoxSystem) ApplyImpulse(id ecs.EntityID, impulse physics.Vec2) bool {
	body, ok := s.bodyOf(id)
	if !ok {
		return false
	}
	body.ApplyImpulse(impulse)
	return true
}

// ApplyForceAt 在世界坐标点对箱子施加力
func (s *BoxSystem) ApplyForceAt(id ecs.EntityID, force, worldPoint physics.Vec2) bool {
	body, ok := s.bodyOf(id)
	if !ok {
		return false
	}
	body.ApplyForceAt(force, worldPoint)
	return true
}

// SetMass 修改箱子质量
func (s *BoxSystem) SetMass(id ecs.EntityID, mass float64) bool {
	body, ok := s.bodyOf(id)
	if !ok || mass <= 0 {
		return false
	}
	body.SetMass(mass)
	return true
}

// SetToppleThreshold 修改倾倒判定角度
func (s *BoxSystem) SetToppleThreshold(id ecs.EntityID, degrees float64) bool {
	box, ok := ecs.GetComponent[*components.BoxComponent](s.em, id)
	if !ok {
		return false
	}
	box.ToppleThreshold = degrees
	return true
}

func (s *BoxSystem) bodyOf(id ecs.EntityID) (physics.Body, bool) {
	if !ecs.HasComponent[*components.BoxComponent](s.em, id) {
		return nil, false
	}
	bodyComp, ok := ecs.GetComponent[*components.BodyComponent](s.em, id)
	if !ok || bodyComp.Body == nil {
		return nil, false
	}
	return bodyComp.Body, true
}
