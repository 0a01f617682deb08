package systems

import (
	"fmt"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/decker502/cannonbox/pkg/ecs"
	"github.com/decker502/cannonbox/pkg/physics"
)

// fakeBody 可手动设置姿态与速度的刚体
type fakeBody struct {
	pos          physics.Vec2
	rotation     float64
	velocity     physics.Vec2
	angularSpeed float64
	mass         float64
	impulses     []physics.Vec2
	forces       []physics.Vec2
}

func newFakeBody() *fakeBody { return &fakeBody{mass: 1} }

func (b *fakeBody) Position() physics.Vec2          { return b.pos }
func (b *fakeBody) RotationDegrees() float64        { return b.rotation }
func (b *fakeBody) Velocity() physics.Vec2          { return b.velocity }
func (b *fakeBody) AngularVelocityDegrees() float64 { return b.angularSpeed }
func (b *fakeBody) ApplyImpulse(impulse physics.Vec2) {
	b.impulses = append(b.impulses, impulse)
}
func (b *fakeBody) ApplyForceAt(force, _ physics.Vec2) {
	b.forces = append(b.forces, force)
}
func (b *fakeBody) SetMass(mass float64) { b.mass = mass }
func (b *fakeBody) Mass() float64        { return b.mass }

// fakeSound 记录播放请求
type fakeSound struct {
	playing bool
	length  float64
	volumes []float64
}

func (s *fakeSound) IsPlaying() bool { return s.playing }
func (s *fakeSound) PlayOneShot(volume float64) {
	s.volumes = append(s.volumes, volume)
	s.playing = true
}
func (s *fakeSound) Length() float64 { return s.length }

// fakeScore 累计得分
type fakeScore struct {
	total int
	calls int
}

func (f *fakeScore) AddScore(points int) {
	f.total += points
	f.calls++
}

// fakeInput 脚本化的炮台输入
type fakeInput struct {
	up, down, fire bool
}

func (i *fakeInput) RotateUpHeld() bool    { return i.up }
func (i *fakeInput) RotateDownHeld() bool  { return i.down }
func (i *fakeInput) FireJustPressed() bool { return i.fire }

// fakeSpawner 创建带假刚体的炮弹实体
type fakeSpawner struct {
	em             *ecs.EntityManager
	spawned        []ecs.EntityID
	positions      []physics.Vec2
	bodies         map[ecs.EntityID]*fakeBody
	withoutProjCmp bool
	err            error
}

func newFakeSpawner(em *ecs.EntityManager) *fakeSpawner {
	return &fakeSpawner{em: em, bodies: make(map[ecs.EntityID]*fakeBody)}
}

func (s *fakeSpawner) SpawnProjectile(x, y, rotation float64) (ecs.EntityID, error) {
	if s.err != nil {
		return 0, s.err
	}
	id := s.em.CreateEntity()
	body := newFakeBody()
	body.pos = physics.Vec2{X: x, Y: y}
	body.rotation = rotation
	s.em.AddComponent(id, &components.BodyComponent{Body: body, Layer: physics.LayerProjectile})
	if !s.withoutProjCmp {
		s.em.AddComponent(id, &components.ProjectileComponent{
			DestroyOnCollision: true,
			TargetLayer:        physics.LayerBox,
		})
	}
	s.spawned = append(s.spawned, id)
	s.positions = append(s.positions, physics.Vec2{X: x, Y: y})
	s.bodies[id] = body
	return id, nil
}

// fakeEffects 记录特效生成位置
type fakeEffects struct {
	at []physics.Vec2
}

func (f *fakeEffects) SpawnImpactEffect(x, y float64) (ecs.EntityID, error) {
	f.at = append(f.at, physics.Vec2{X: x, Y: y})
	if len(f.at) > 100 {
		return 0, fmt.Errorf("too many effects")
	}
	return ecs.EntityID(1000 + len(f.at)), nil
}
