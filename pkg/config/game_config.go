package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// GameConfig 游戏调参配置
//
// 所有长度单位为米，角度单位为度，时间单位为秒。
// 配置文件可以是 YAML 或 TOML，按扩展名识别；文件中未出现的字段保留默认值。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Box        BoxConfig        `yaml:"box" toml:"box"`
	Cannon     CannonConfig     `yaml:"cannon" toml:"cannon"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Level      LevelConfig      `yaml:"level" toml:"level"`
}

// PhysicsConfig 物理世界参数
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity" toml:"gravity"`
	Substeps       int     `yaml:"substeps" toml:"substeps"`
	Iterations     int     `yaml:"iterations" toml:"iterations"`
	GroundY        float64 `yaml:"groundY" toml:"groundY"`
	GroundFriction float64 `yaml:"groundFriction" toml:"groundFriction"`
}

// BoxConfig 箱子参数
type BoxConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`

	// 刚体
	Mass           float64 `yaml:"mass" toml:"mass"`
	LinearDamping  float64 `yaml:"linearDamping" toml:"linearDamping"`
	AngularDamping float64 `yaml:"angularDamping" toml:"angularDamping"`
	Bounciness     float64 `yaml:"bounciness" toml:"bounciness"`
	Friction       float64 `yaml:"friction" toml:"friction"`
	GravityScale   float64 `yaml:"gravityScale" toml:"gravityScale"`

	// 生命周期
	ToppleThreshold float64 `yaml:"toppleThreshold" toml:"toppleThreshold"`
	SettleThreshold float64 `yaml:"settleThreshold" toml:"settleThreshold"`
	SettleTime      float64 `yaml:"settleTime" toml:"settleTime"`
	FadeOutDuration float64 `yaml:"fadeOutDuration" toml:"fadeOutDuration"`
	PointValue      int     `yaml:"pointValue" toml:"pointValue"`

	// ImpactSound 撞击音效名，空字符串表示无音效
	ImpactSound string `yaml:"impactSound" toml:"impactSound"`
}

// CannonConfig 炮台参数
type CannonConfig struct {
	PivotX       float64 `yaml:"pivotX" toml:"pivotX"`
	PivotY       float64 `yaml:"pivotY" toml:"pivotY"`
	BarrelLength float64 `yaml:"barrelLength" toml:"barrelLength"`

	RotationSpeed float64 `yaml:"rotationSpeed" toml:"rotationSpeed"`
	MinAngle      float64 `yaml:"minAngle" toml:"minAngle"`
	MaxAngle      float64 `yaml:"maxAngle" toml:"maxAngle"`
	InitialAngle  float64 `yaml:"initialAngle" toml:"initialAngle"`

	ShootForce    float64 `yaml:"shootForce" toml:"shootForce"`
	ShootCooldown float64 `yaml:"shootCooldown" toml:"shootCooldown"`
}

// ProjectileConfig 炮弹参数
type ProjectileConfig struct {
	Radius       float64 `yaml:"radius" toml:"radius"`
	Mass         float64 `yaml:"mass" toml:"mass"`
	GravityScale float64 `yaml:"gravityScale" toml:"gravityScale"`
	Bounciness   float64 `yaml:"bounciness" toml:"bounciness"`
	Friction     float64 `yaml:"friction" toml:"friction"`

	Lifetime           float64 `yaml:"lifetime" toml:"lifetime"`
	DestroyOnCollision bool    `yaml:"destroyOnCollision" toml:"destroyOnCollision"`
	ImpactEffect       bool    `yaml:"impactEffect" toml:"impactEffect"`
	ImpactSound        string  `yaml:"impactSound" toml:"impactSound"`
}

// LevelConfig 关卡布置
type LevelConfig struct {
	Boxes []BoxPlacement `yaml:"boxes" toml:"boxes"`
}

// BoxPlacement 单个箱子的初始位姿
type BoxPlacement struct {
	X        float64 `yaml:"x" toml:"x"`
	Y        float64 `yaml:"y" toml:"y"`
	Rotation float64 `yaml:"rotation" toml:"rotation"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Physics: PhysicsConfig{
			Gravity:        9.81,
			Substeps:       4,
			Iterations:     20,
			GroundY:        0,
			GroundFriction: 0.6,
		},
		Box: BoxConfig{
			Width:           1,
			Height:          1,
			Mass:            2,
			LinearDamping:   0.5,
			AngularDamping:  2,
			Bounciness:      0.2,
			Friction:        0.4,
			GravityScale:    1,
			ToppleThreshold: 30,
			SettleThreshold: 0.1,
			SettleTime:      1,
			FadeOutDuration: 0.75,
			PointValue:      100,
			ImpactSound:     "box_thud",
		},
		Cannon: CannonConfig{
			PivotX:        0,
			PivotY:        1,
			BarrelLength:  1.2,
			RotationSpeed: 50,
			MinAngle:      -45,
			MaxAngle:      45,
			InitialAngle:  15,
			ShootForce:    36,
			ShootCooldown: 0.25,
		},
		Projectile: ProjectileConfig{
			Radius:             0.25,
			Mass:               1,
			GravityScale:       9.8,
			Bounciness:         0.2,
			Friction:           0.4,
			Lifetime:           10,
			DestroyOnCollision: true,
			ImpactEffect:       true,
			ImpactSound:        "ball_clack",
		},
		Level: LevelConfig{
			Boxes: DefaultBoxLayout(),
		},
	}
}

// DefaultBoxLayout 三座箱子塔
func DefaultBoxLayout() []BoxPlacement {
	var boxes []BoxPlacement
	for _, tower := range []struct {
		x      float64
		height int
	}{
		{x: 7, height: 3},
		{x: 10, height: 2},
		{x: 12.5, height: 4},
	} {
		for i := 0; i < tower.height; i++ {
			boxes = append(boxes, BoxPlacement{X: tower.x, Y: 0.5 + float64(i)})
		}
	}
	return boxes
}

// LoadGameConfig 从文件加载配置
//
// 按扩展名选择格式（.yaml / .yml / .toml），加载后执行校验。
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := ParseGameConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load game config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析配置数据
// format: "yaml"、"yml" 或 "toml"
func ParseGameConfig(data []byte, format string) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 校验配置
func (c *GameConfig) Validate() error {
	p := c.Physics
	if p.Gravity < 0 {
		return fmt.Errorf("physics.gravity cannot be negative, got %f", p.Gravity)
	}
	if p.Substeps < 1 {
		return fmt.Errorf("physics.substeps must be at least 1, got %d", p.Substeps)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("physics.iterations must be at least 1, got %d", p.Iterations)
	}

	b := c.Box
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("box size must be positive, got %fx%f", b.Width, b.Height)
	}
	if b.Mass <= 0 {
		return fmt.Errorf("box.mass must be positive, got %f", b.Mass)
	}
	if b.GravityScale < 0 {
		return fmt.Errorf("box.gravityScale cannot be negative, got %f", b.GravityScale)
	}
	if b.LinearDamping < 0 || b.AngularDamping < 0 {
		return fmt.Errorf("box damping cannot be negative")
	}
	if b.ToppleThreshold <= 0 || b.ToppleThreshold >= 180 {
		return fmt.Errorf("box.toppleThreshold must be in (0, 180), got %f", b.ToppleThreshold)
	}
	if b.SettleThreshold <= 0 {
		return fmt.Errorf("box.settleThreshold must be positive, got %f", b.SettleThreshold)
	}
	if b.SettleTime < 0 || b.FadeOutDuration < 0 {
		return fmt.Errorf("box.settleTime and box.fadeOutDuration cannot be negative")
	}
	if b.PointValue < 0 {
		return fmt.Errorf("box.pointValue cannot be negative, got %d", b.PointValue)
	}

	cn := c.Cannon
	if cn.MinAngle > cn.MaxAngle {
		return fmt.Errorf("cannon.minAngle (%f) must not exceed cannon.maxAngle (%f)", cn.MinAngle, cn.MaxAngle)
	}
	if cn.RotationSpeed < 0 {
		return fmt.Errorf("cannon.rotationSpeed cannot be negative, got %f", cn.RotationSpeed)
	}
	if cn.ShootCooldown < 0 {
		return fmt.Errorf("cannon.shootCooldown cannot be negative, got %f", cn.ShootCooldown)
	}
	if cn.BarrelLength < 0 {
		return fmt.Errorf("cannon.barrelLength cannot be negative, got %f", cn.BarrelLength)
	}

	pr := c.Projectile
	if pr.Radius <= 0 {
		return fmt.Errorf("projectile.radius must be positive, got %f", pr.Radius)
	}
	if pr.Mass <= 0 {
		return fmt.Errorf("projectile.mass must be positive, got %f", pr.Mass)
	}
	if pr.Lifetime <= 0 {
		return fmt.Errorf("projectile.lifetime must be positive, got %f", pr.Lifetime)
	}

	return nil
}
