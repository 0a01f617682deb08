package game

import (
	"log"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 为实体创建独立的音源（每个实体一个播放器，可互不打断地播放）
//   - 与设置联动：音效开关与音量从 SettingsManager 读取
//   - 实体销毁或场景释放时关闭播放器
type AudioManager struct {
	context         *audio.Context
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil，使用默认音量
	sources         map[*PlayerSource]struct{}
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 全局音频上下文，可为 nil（无声模式，NewSource 返回 nil）
//   - rm: 音频片段加载器，采样率需与 ctx 一致
//   - sm: 设置管理器，可为 nil
func NewAudioManager(ctx *audio.Context, rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		resourceManager: rm,
		settingsManager: sm,
		sources:         make(map[*PlayerSource]struct{}),
	}
}

// NewSource 为实体创建音源
// 片段名为空或处于无声模式时返回 (nil, nil)，调用方按“无音效”处理
func (am *AudioManager) NewSource(clipName string) (components.SoundSource, error) {
	if am == nil || am.context == nil || clipName == "" {
		return nil, nil
	}

	clip, err := am.resourceManager.LoadClip(clipName)
	if err != nil {
		return nil, err
	}

	src := &PlayerSource{
		player:  am.context.NewPlayerFromBytes(clip.PCM),
		length:  clip.Duration(),
		manager: am,
	}
	am.sources[src] = struct{}{}
	return src, nil
}

// Release 关闭音源的播放器
// 非本管理器创建的音源会被忽略
func (am *AudioManager) Release(source components.SoundSource) {
	if am == nil {
		return
	}
	src, ok := source.(*PlayerSource)
	if !ok || src == nil {
		return
	}
	if _, exists := am.sources[src]; !exists {
		return
	}
	delete(am.sources, src)

	if err := src.player.Close(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to close player for clip: %v", err)
	}
}

// ReleaseAll 关闭全部播放器（场景释放时调用）
func (am *AudioManager) ReleaseAll() {
	if am == nil {
		return
	}
	for src := range am.sources {
		am.Release(src)
	}
}

// ActiveSources 当前持有的音源数量
func (am *AudioManager) ActiveSources() int {
	if am == nil {
		return 0
	}
	return len(am.sources)
}

// effectiveVolume 叠加全局音量；音效关闭时返回 0
func (am *AudioManager) effectiveVolume(volume float64) float64 {
	if am.settingsManager == nil {
		return clampVolume(volume * DefaultSettings().SoundVolume)
	}
	settings := am.settingsManager.GetSettings()
	if !settings.SoundEnabled {
		return 0
	}
	return clampVolume(volume * settings.SoundVolume)
}

// PlayerSource 基于 Ebitengine 播放器的音源，实现 components.SoundSource
type PlayerSource struct {
	player  *audio.Player
	length  float64
	manager *AudioManager
}

// IsPlaying 音源是否正在播放
func (s *PlayerSource) IsPlaying() bool {
	return s.player.IsPlaying()
}

// PlayOneShot 从头播放一次
func (s *PlayerSource) PlayOneShot(volume float64) {
	vol := s.manager.effectiveVolume(volume)
	if vol <= 0 {
		return
	}

	s.player.SetVolume(vol)
	if err := s.player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound: %v", err)
	}
	s.player.Play()
}

// Length 音频时长（秒）
func (s *PlayerSource) Length() float64 {
	return s.length
}
