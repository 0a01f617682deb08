package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Box.ToppleThreshold != 30 || cfg.Box.PointValue != 100 {
		t.Errorf("unexpected box defaults: %+v", cfg.Box)
	}
	if !cfg.Projectile.DestroyOnCollision {
		t.Error("projectiles should be destroyed on collision by default")
	}
	if len(cfg.Level.Boxes) != 9 {
		t.Errorf("expected 9 boxes in the default layout, got %d", len(cfg.Level.Boxes))
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		content     string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name:   "YAML 覆盖部分字段",
			format: "yaml",
			content: `
box:
  toppleThreshold: 45
  pointValue: 250
cannon:
  minAngle: -10
  maxAngle: 60
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Box.ToppleThreshold != 45 {
					t.Errorf("expected toppleThreshold = 45, got %f", cfg.Box.ToppleThreshold)
				}
				if cfg.Box.PointValue != 250 {
					t.Errorf("expected pointValue = 250, got %d", cfg.Box.PointValue)
				}
				// 未出现的字段保留默认值
				if cfg.Box.FadeOutDuration != 0.75 {
					t.Errorf("expected default fadeOutDuration, got %f", cfg.Box.FadeOutDuration)
				}
				if cfg.Cannon.MaxAngle != 60 || cfg.Cannon.ShootCooldown != 0.25 {
					t.Errorf("unexpected cannon config: %+v", cfg.Cannon)
				}
			},
		},
		{
			name:   "TOML",
			format: "toml",
			content: `
[projectile]
destroyOnCollision = false
lifetime = 4.5

[[level.boxes]]
x = 3.0
y = 0.5

[[level.boxes]]
x = 3.0
y = 1.5
rotation = 10.0
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Projectile.DestroyOnCollision {
					t.Error("expected destroyOnCollision = false")
				}
				if cfg.Projectile.Lifetime != 4.5 {
					t.Errorf("expected lifetime = 4.5, got %f", cfg.Projectile.Lifetime)
				}
				if len(cfg.Level.Boxes) != 2 {
					t.Fatalf("expected 2 boxes, got %d", len(cfg.Level.Boxes))
				}
				if cfg.Level.Boxes[1].Rotation != 10 {
					t.Errorf("expected rotation = 10, got %f", cfg.Level.Boxes[1].Rotation)
				}
			},
		},
		{
			name:        "角度范围颠倒",
			format:      "yaml",
			content:     "cannon:\n  minAngle: 50\n  maxAngle: 10\n",
			wantErr:     true,
			errContains: "minAngle",
		},
		{
			name:        "负分值",
			format:      "yml",
			content:     "box:\n  pointValue: -5\n",
			wantErr:     true,
			errContains: "pointValue",
		},
		{
			name:        "炮弹寿命为零",
			format:      "toml",
			content:     "[projectile]\nlifetime = 0.0\n",
			wantErr:     true,
			errContains: "lifetime",
		},
		{
			name:        "YAML 语法错误",
			format:      "yaml",
			content:     "box: [unclosed",
			wantErr:     true,
			errContains: "YAML",
		},
		{
			name:        "不支持的格式",
			format:      "json",
			content:     "{}",
			wantErr:     true,
			errContains: "unsupported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.content), tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(yamlPath, []byte("box:\n  settleTime: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadGameConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadGameConfig(yaml) failed: %v", err)
	}
	if cfg.Box.SettleTime != 2 {
		t.Errorf("expected settleTime = 2, got %f", cfg.Box.SettleTime)
	}

	tomlPath := filepath.Join(dir, "game.TOML")
	if err := os.WriteFile(tomlPath, []byte("[box]\nsettleTime = 3.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadGameConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadGameConfig(toml) failed: %v", err)
	}
	if cfg.Box.SettleTime != 3 {
		t.Errorf("expected settleTime = 3, got %f", cfg.Box.SettleTime)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// 仓库自带的配置文件必须能通过校验
func TestBundledGameConfig(t *testing.T) {
	path := filepath.Join("..", "..", "data", "game.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("bundled config not found at %s", path)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("bundled config failed to load: %v", err)
	}
	if len(cfg.Level.Boxes) == 0 {
		t.Error("bundled config should place at least one box")
	}
}
