package audio

import (
	"encoding/binary"
	"testing"
)

func TestSynthesizeImpact(t *testing.T) {
	const sampleRate = 48000

	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			pcm, err := SynthesizeImpact(name, sampleRate)
			if err != nil {
				t.Fatalf("SynthesizeImpact(%q) failed: %v", name, err)
			}

			preset := Presets[name]
			wantFrames := int(preset.Duration.Seconds() * sampleRate)
			gotFrames := len(pcm) / 4
			if len(pcm)%4 != 0 {
				t.Fatalf("PCM length %d is not a multiple of a stereo frame", len(pcm))
			}
			if gotFrames < wantFrames-1 || gotFrames > wantFrames+1 {
				t.Errorf("expected about %d frames, got %d", wantFrames, gotFrames)
			}

			// 左右声道相同，且不是全静音
			nonZero := false
			for i := 0; i+4 <= len(pcm); i += 4 {
				l := int16(binary.LittleEndian.Uint16(pcm[i:]))
				r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
				if l != r {
					t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
				}
				if l != 0 {
					nonZero = true
				}
			}
			if !nonZero {
				t.Error("rendered clip is silent")
			}
		})
	}
}

func TestSynthesizeImpactIsDeterministic(t *testing.T) {
	a, err := SynthesizeImpact("box_thud", 22050)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SynthesizeImpact("box_thud", 22050)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("two renders of the same preset differ")
	}
}

func TestSynthesizeImpactErrors(t *testing.T) {
	if _, err := SynthesizeImpact("no_such_sound", 48000); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := SynthesizeImpact("box_thud", 0); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestToInt16Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, 32767},
		{2, 32767},
		{-1, -32767},
		{-3, -32767},
	}
	for _, tt := range tests {
		if got := toInt16(tt.in); got != tt.want {
			t.Errorf("toInt16(%f) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
