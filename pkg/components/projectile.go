package components

import "github.com/decker502/cannonbox/pkg/physics"

// ProjectileComponent 炮弹参数
type ProjectileComponent struct {
	DestroyOnCollision bool          // 命中目标层后是否销毁
	TargetLayer        physics.Layer // 触发销毁的目标层（默认箱子）
	SpawnImpactEffect  bool          // 碰撞时是否生成击中效果
	HitCount           int           // 碰撞次数（仅统计）
	DestroyScheduled   bool          // 是否已安排延迟销毁
}
