package game

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	sfx "github.com/decker502/cannonbox/internal/audio"
	"github.com/decker502/cannonbox/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Clip is a fully decoded sound effect: 16-bit little-endian stereo PCM at
// the resource manager's sample rate.
type Clip struct {
	Name       string
	PCM        []byte
	SampleRate int
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c == nil || c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.PCM)) / float64(sfx.BytesPerSecond(c.SampleRate))
}

// ResourceManager is responsible for loading and caching the game's sound clips.
//
// A clip name is either a built-in synthesized preset ("box_thud", "ball_clack")
// or a file path. File paths are looked up in the embedded resources first and
// then on disk. Supported formats: MP3 (.mp3), OGG Vorbis (.ogg), WAV (.wav)
// and Sun audio (.au).
//
// This implementation is NOT thread-safe. All clips are expected to be loaded
// from the game loop goroutine.
type ResourceManager struct {
	sampleRate int
	clips      map[string]*Clip
}

// NewResourceManager creates a ResourceManager that decodes every clip to sampleRate.
// The sample rate must match the audio context the clips are played on.
func NewResourceManager(sampleRate int) *ResourceManager {
	return &ResourceManager{
		sampleRate: sampleRate,
		clips:      make(map[string]*Clip),
	}
}

// SampleRate returns the output sample rate.
func (rm *ResourceManager) SampleRate() int {
	return rm.sampleRate
}

// LoadClip loads a clip by name and caches it for future use.
func (rm *ResourceManager) LoadClip(name string) (*Clip, error) {
	if clip, exists := rm.clips[name]; exists {
		return clip, nil
	}

	var pcm []byte
	if _, builtin := sfx.Presets[name]; builtin {
		data, err := sfx.SynthesizeImpact(name, rm.sampleRate)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize clip %s: %w", name, err)
		}
		pcm = data
	} else {
		raw, err := readResource(name)
		if err != nil {
			return nil, err
		}
		pcm, err = rm.decode(name, raw)
		if err != nil {
			return nil, err
		}
	}

	clip := &Clip{Name: name, PCM: pcm, SampleRate: rm.sampleRate}
	rm.clips[name] = clip
	return clip, nil
}

// GetClip retrieves a previously loaded clip, or nil if it is not cached.
func (rm *ResourceManager) GetClip(name string) *Clip {
	return rm.clips[name]
}

// readResource 优先读取嵌入资源，找不到时读取磁盘文件
func readResource(path string) ([]byte, error) {
	if embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded audio file %s: %w", path, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	return data, nil
}

// decode 按扩展名解码并重采样到目标采样率
func (rm *ResourceManager) decode(path string, data []byte) ([]byte, error) {
	reader := bytes.NewReader(data)
	ext := strings.ToLower(filepath.Ext(path))

	var stream io.Reader
	switch ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(rm.sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(rm.sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(rm.sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		stream = s
	case ".au":
		s, err := sfx.DecodeAU(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU audio %s: %w", path, err)
		}
		stream = s
		if int(s.SampleRate()) != rm.sampleRate {
			stream = audio.Resample(s, s.Length(), int(s.SampleRate()), rm.sampleRate)
		}
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav, .au)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return pcm, nil
}
