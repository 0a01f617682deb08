package components

// FadeComponent 淡出计时
// 每帧由 BoxSystem 推进，结束后实体被删除
type FadeComponent struct {
	Duration float64 // 淡出总时长（秒）
	Elapsed  float64 // 已过时间（秒）
	Alpha    float64 // 当前不透明度 [0, 1]
}

// IsDone 淡出是否完成
func (f *FadeComponent) IsDone() bool {
	return f.Elapsed >= f.Duration
}
