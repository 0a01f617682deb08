package components

// SoundSource 实体上的单个音源
type SoundSource interface {
	// IsPlaying 音源是否正在播放
	IsPlaying() bool
	// PlayOneShot 以指定音量（0.0 ~ 1.0）播放一次
	PlayOneShot(volume float64)
	// Length 音频时长（秒）
	Length() float64
}

// SoundComponent 撞击音效
type SoundComponent struct {
	Impact SoundSource // 可为 nil（未配置音效）
}
