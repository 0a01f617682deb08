// Package physics 封装宿主物理引擎（chipmunk2d 的 Go 移植版 cp）
//
// 游戏逻辑只依赖本包导出的 Body / Collision / CollisionListener 接口，
// 刚体积分、碰撞检测与求解全部交给 cp 完成。
package physics

import (
	"fmt"

	"github.com/decker502/cannonbox/pkg/ecs"
)

// Layer 刚体分类（对应碰撞过滤用的层）
type Layer int

const (
	// LayerNone 未分类
	LayerNone Layer = iota
	// LayerGround 地面等静态几何体
	LayerGround
	// LayerBox 可被击倒的箱子
	LayerBox
	// LayerProjectile 炮弹
	LayerProjectile
)

// String 返回层名称，用于日志输出
func (l Layer) String() string {
	switch l {
	case LayerGround:
		return "ground"
	case LayerBox:
		return "box"
	case LayerProjectile:
		return "projectile"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

// Vec2 二维向量（世界坐标，Y 轴向上，单位：米）
type Vec2 struct {
	X, Y float64
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale 向量数乘
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Body 刚体句柄
// 角度与角速度统一使用"度"，与配置文件保持一致
type Body interface {
	Position() Vec2
	// RotationDegrees 当前旋转角（逆时针为正，未归一化）
	RotationDegrees() float64
	Velocity() Vec2
	// AngularVelocityDegrees 角速度（度/秒）
	AngularVelocityDegrees() float64
	// ApplyImpulse 在质心施加冲量
	ApplyImpulse(impulse Vec2)
	// ApplyForceAt 在世界坐标点施加力（下一步积分生效）
	ApplyForceAt(force, worldPoint Vec2)
	SetMass(mass float64)
	Mass() float64
}

// Collision 一次碰撞开始事件（从"自身"视角描述）
type Collision struct {
	Other         ecs.EntityID // 对方实体（地面为 0）
	OtherLayer    Layer        // 对方分类
	RelativeSpeed float64      // 碰撞前相对速度大小（米/秒）
}

// CollisionListener 接收碰撞事件
// World 在 Step 期间同步调用，实现方不得在回调中增删刚体
type CollisionListener interface {
	OnCollision(self ecs.EntityID, c Collision)
}

// BodyDef 刚体参数
type BodyDef struct {
	Layer          Layer
	Mass           float64
	LinearDamping  float64 // 线性阻尼（每秒）
	AngularDamping float64 // 角阻尼（每秒）
	GravityScale   float64
	Friction       float64
	Elasticity     float64
}
