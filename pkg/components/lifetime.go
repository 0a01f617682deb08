package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如炮弹、击中效果)
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// Remaining 返回剩余时间（秒），不小于 0
func (l *LifetimeComponent) Remaining() float64 {
	r := l.MaxLifetime - l.CurrentLifetime
	if r < 0 {
		return 0
	}
	return r
}

// ShortenTo 把剩余时间缩短到 delay 秒（只缩短，不延长）
func (l *LifetimeComponent) ShortenTo(delay float64) {
	if delay < 0 {
		delay = 0
	}
	if l.Remaining() > delay {
		l.MaxLifetime = l.CurrentLifetime + delay
	}
}
