package components

// BoxState 箱子生命周期状态
//
// 状态流转（单向）：
//
//	Upright → Toppled → Settled → FadingOut → Removed
type BoxState int

const (
	// BoxUpright 直立，尚未被击倒
	BoxUpright BoxState = iota
	// BoxToppled 已倾倒（偏转角曾超过阈值），等待静止
	BoxToppled
	// BoxSettled 倾倒后已静止足够长时间
	BoxSettled
	// BoxFadingOut 正在淡出
	BoxFadingOut
	// BoxRemoved 已标记删除
	BoxRemoved
)

// String 返回状态名，用于日志
func (s BoxState) String() string {
	switch s {
	case BoxUpright:
		return "upright"
	case BoxToppled:
		return "toppled"
	case BoxSettled:
		return "settled"
	case BoxFadingOut:
		return "fading_out"
	case BoxRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// BoxComponent 可击倒箱子的状态与参数
type BoxComponent struct {
	// 参数
	ToppleThreshold float64 // 倾倒判定角度（度）
	SettleThreshold float64 // 静止判定速度阈值（线速度与角速度共用）
	SettleTime      float64 // 需持续静止的时间（秒）
	FadeOutDuration float64 // 淡出时长（秒）
	PointValue      int     // 击倒得分

	// 状态
	State          BoxState
	Deflection     float64 // 最近一帧相对直立的偏转角 [0, 180]
	IsToppled      bool    // 当前帧偏转角是否超过阈值（可随箱子扶正而变回 false）
	HasBeenToppled bool    // 是否曾经倾倒（单调：只会 false → true）
	IsSettled      bool
	SettleTimer    float64 // 连续静止累计时间（秒）
}
