package components

import "github.com/decker502/cannonbox/pkg/physics"

// CannonComponent 炮台瞄准与射击参数
type CannonComponent struct {
	Rotation      float64 // 当前角度（度），始终位于 [MinAngle, MaxAngle]
	RotationSpeed float64 // 旋转速度（度/秒）
	MinAngle      float64
	MaxAngle      float64

	ShootForce    float64 // 发射冲量大小
	ShootCooldown float64 // 两次发射的最小间隔（秒）
	LastShootTime float64 // 上次成功发射的时间（秒，系统时钟）
	HasFired      bool    // 是否发射过（首次发射不受冷却限制）

	// SpawnPoint 发射点所在的炮管枢轴；nil 表示未配置
	SpawnPoint *SpawnPoint
}

// SpawnPoint 发射点：炮管枢轴位置 + 枢轴到炮口的距离
// 炮口位置随炮管角度旋转
type SpawnPoint struct {
	Pivot        physics.Vec2
	BarrelLength float64
}
