package physics

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/cannonbox/pkg/ecs"
	"github.com/jakecoffman/cp"
)

// WorldOptions 物理世界参数
type WorldOptions struct {
	Gravity    float64 // 重力加速度（向下为正，米/秒²）
	Substeps   int     // 每帧子步数，子步越多越不容易穿透
	Iterations uint    // 约束求解迭代次数

	// 休眠：线速度与角速度持续低于阈值 TimeToSleep 秒后速度归零
	// 阈值为 0 时使用默认值
	SleepLinearSpeed  float64 // 米/秒
	SleepAngularSpeed float64 // 度/秒
	TimeToSleep       float64 // 秒
}

const (
	defaultSleepLinearSpeed  = 0.01
	defaultSleepAngularSpeed = 2.0
	defaultTimeToSleep       = 0.5
)

// World 基于 cp.Space 的物理世界
//
// 每个实体最多对应一个刚体；碰撞开始事件按刚体所在层分发给注册的监听器。
type World struct {
	space     *cp.Space
	substeps  int
	bodies    map[ecs.EntityID]*rigidBody
	ground    *rigidBody
	listeners map[Layer]CollisionListener

	sleepLinear  float64
	sleepAngular float64 // 弧度/秒
	timeToSleep  float64
}

// rigidBody 实现 Body 接口
type rigidBody struct {
	id       ecs.EntityID
	layer    Layer
	body     *cp.Body
	shapes   []*cp.Shape
	idleTime float64
}

// NewWorld 创建物理世界
func NewWorld(opts WorldOptions) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: -opts.Gravity})
	if opts.Iterations > 0 {
		space.Iterations = opts.Iterations
	}

	substeps := opts.Substeps
	if substeps < 1 {
		substeps = 1
	}

	w := &World{
		space:        space,
		substeps:     substeps,
		bodies:       make(map[ecs.EntityID]*rigidBody),
		ground:       &rigidBody{id: 0, layer: LayerGround, body: space.StaticBody},
		listeners:    make(map[Layer]CollisionListener),
		sleepLinear:  orDefault(opts.SleepLinearSpeed, defaultSleepLinearSpeed),
		sleepAngular: orDefault(opts.SleepAngularSpeed, defaultSleepAngularSpeed) * math.Pi / 180,
		timeToSleep:  orDefault(opts.TimeToSleep, defaultTimeToSleep),
	}

	// 每个动态层注册一个通配处理器；通配回调中第一个形状总是"自身"
	for _, layer := range []Layer{LayerBox, LayerProjectile} {
		handler := space.NewWildcardCollisionHandler(cp.CollisionType(layer))
		handler.BeginFunc = w.onCollisionBegin
	}

	return w
}

// SetListener 为指定层注册碰撞监听器（nil 表示取消）
func (w *World) SetListener(layer Layer, listener CollisionListener) {
	if listener == nil {
		delete(w.listeners, layer)
		return
	}
	w.listeners[layer] = listener
}

// AddGround 添加一段静态地面（线段）
func (w *World) AddGround(x0, x1, y, friction float64) {
	shape := cp.NewSegment(w.space.StaticBody, cp.Vector{X: x0, Y: y}, cp.Vector{X: x1, Y: y}, 0.1)
	shape.SetFriction(friction)
	shape.SetElasticity(0.2)
	shape.SetCollisionType(cp.CollisionType(LayerGround))
	shape.UserData = w.ground
	w.space.AddShape(shape)
	w.ground.shapes = append(w.ground.shapes, shape)
}

// AddBox 添加矩形刚体
//
// 参数:
//   - id: 所属实体
//   - def: 刚体参数
//   - x, y: 中心位置（米）
//   - width, height: 尺寸（米）
//   - rotation: 初始角度（度）
func (w *World) AddBox(id ecs.EntityID, def BodyDef, x, y, width, height, rotation float64) (Body, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("box size must be positive, got %.2fx%.2f", width, height)
	}
	if err := w.checkNew(id, def); err != nil {
		return nil, err
	}

	body := cp.NewBody(def.Mass, cp.MomentForBox(def.Mass, width, height))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(rotation * math.Pi / 180)
	shape := cp.NewBox(body, width, height, 0)
	return w.attach(id, def, body, shape), nil
}

// AddCircle 添加圆形刚体
func (w *World) AddCircle(id ecs.EntityID, def BodyDef, x, y, radius float64) (Body, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("circle radius must be positive, got %.2f", radius)
	}
	if err := w.checkNew(id, def); err != nil {
		return nil, err
	}

	body := cp.NewBody(def.Mass, cp.MomentForCircle(def.Mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	return w.attach(id, def, body, shape), nil
}

func (w *World) checkNew(id ecs.EntityID, def BodyDef) error {
	if id == 0 {
		return fmt.Errorf("entity id 0 is reserved for static geometry")
	}
	if _, exists := w.bodies[id]; exists {
		return fmt.Errorf("entity %d already has a body", id)
	}
	if def.Mass <= 0 {
		return fmt.Errorf("body mass must be positive, got %.2f", def.Mass)
	}
	return nil
}

func (w *World) attach(id ecs.EntityID, def BodyDef, body *cp.Body, shape *cp.Shape) *rigidBody {
	gravityScale := def.GravityScale
	linearDamping := def.LinearDamping
	angularDamping := def.AngularDamping
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
		cp.BodyUpdateVelocity(b, gravity.Mult(gravityScale), damping/(1+dt*linearDamping), dt)
		// BodyUpdateVelocity 对角速度使用同一阻尼系数，这里换算成角阻尼
		b.SetAngularVelocity(b.AngularVelocity() * (1 + dt*linearDamping) / (1 + dt*angularDamping))
	})

	shape.SetFriction(def.Friction)
	shape.SetElasticity(def.Elasticity)
	shape.SetCollisionType(cp.CollisionType(def.Layer))

	rb := &rigidBody{id: id, layer: def.Layer, body: body}
	body.UserData = rb
	shape.UserData = rb

	w.space.AddBody(body)
	w.space.AddShape(shape)
	rb.shapes = append(rb.shapes, shape)
	w.bodies[id] = rb
	return rb
}

// Body 返回实体的刚体句柄
func (w *World) Body(id ecs.EntityID) (Body, bool) {
	rb, ok := w.bodies[id]
	if !ok {
		return nil, false
	}
	return rb, true
}

// Remove 移除实体的刚体；实体没有刚体时无操作
// 必须在 Step 之外调用
func (w *World) Remove(id ecs.EntityID) {
	rb, ok := w.bodies[id]
	if !ok {
		return
	}
	for _, shape := range rb.shapes {
		w.space.RemoveShape(shape)
	}
	w.space.RemoveBody(rb.body)
	delete(w.bodies, id)
}

// BodyCount 返回动态刚体数量
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Step 推进物理模拟
func (w *World) Step(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	sub := deltaTime / float64(w.substeps)
	for i := 0; i < w.substeps; i++ {
		w.space.Step(sub)
	}
	w.updateSleep(deltaTime)
}

// updateSleep 静止足够久的刚体速度归零，消除接触抖动
func (w *World) updateSleep(deltaTime float64) {
	for _, rb := range w.bodies {
		b := rb.body
		if b.Velocity().Length() >= w.sleepLinear || math.Abs(b.AngularVelocity()) >= w.sleepAngular {
			rb.idleTime = 0
			continue
		}
		rb.idleTime += deltaTime
		if rb.idleTime >= w.timeToSleep {
			b.SetVelocity(0, 0)
			b.SetAngularVelocity(0)
		}
	}
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// onCollisionBegin 通配处理器回调：第一个形状是注册层上的"自身"
func (w *World) onCollisionBegin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	shapeA, shapeB := arb.Shapes()
	self, ok := shapeA.UserData.(*rigidBody)
	if !ok {
		return true
	}
	other, ok := shapeB.UserData.(*rigidBody)
	if !ok {
		log.Printf("[Physics] Warning: shape without owner collided with entity %d", self.id)
		return true
	}

	listener := w.listeners[self.layer]
	if listener == nil {
		return true
	}

	bodyA, bodyB := arb.Bodies()
	relative := bodyA.Velocity().Sub(bodyB.Velocity()).Length()

	listener.OnCollision(self.id, Collision{
		Other:         other.id,
		OtherLayer:    other.layer,
		RelativeSpeed: relative,
	})
	return true
}

// ========== rigidBody: Body 接口实现 ==========

func (rb *rigidBody) Position() Vec2 {
	p := rb.body.Position()
	return Vec2{X: p.X, Y: p.Y}
}

func (rb *rigidBody) RotationDegrees() float64 {
	return rb.body.Angle() * 180 / math.Pi
}

func (rb *rigidBody) Velocity() Vec2 {
	v := rb.body.Velocity()
	return Vec2{X: v.X, Y: v.Y}
}

func (rb *rigidBody) AngularVelocityDegrees() float64 {
	return rb.body.AngularVelocity() * 180 / math.Pi
}

func (rb *rigidBody) ApplyImpulse(impulse Vec2) {
	rb.idleTime = 0
	rb.body.ApplyImpulseAtWorldPoint(cp.Vector{X: impulse.X, Y: impulse.Y}, rb.body.Position())
}

func (rb *rigidBody) ApplyForceAt(force, worldPoint Vec2) {
	rb.idleTime = 0
	rb.body.ApplyForceAtWorldPoint(cp.Vector{X: force.X, Y: force.Y}, cp.Vector{X: worldPoint.X, Y: worldPoint.Y})
}

func (rb *rigidBody) SetMass(mass float64) {
	if mass <= 0 {
		return
	}
	rb.body.SetMass(mass)
}

func (rb *rigidBody) Mass() float64 {
	return rb.body.Mass()
}
