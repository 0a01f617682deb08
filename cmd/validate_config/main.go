// validate_config 校验游戏配置文件（YAML 或 TOML）
//
// 用法:
//
//	go run ./cmd/validate_config data/game.yaml
package main

import (
	"fmt"
	"os"

	"github.com/decker502/cannonbox/pkg/config"
)

func main() {
	path := "data/game.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 配置格式正确: %s\n", path)
	fmt.Printf("✅ 箱子数量: %d\n", len(cfg.Level.Boxes))
	fmt.Printf("   倾倒阈值 %.1f°，静止 %.2fs 后淡出 %.2fs，每个 %d 分\n",
		cfg.Box.ToppleThreshold, cfg.Box.SettleTime, cfg.Box.FadeOutDuration, cfg.Box.PointValue)
	fmt.Printf("   炮管范围 [%.1f°, %.1f°]，冷却 %.2fs\n",
		cfg.Cannon.MinAngle, cfg.Cannon.MaxAngle, cfg.Cannon.ShootCooldown)

	// 箱子互相重叠会在第一帧被物理引擎弹开
	overlaps := 0
	for i := range cfg.Level.Boxes {
		for j := i + 1; j < len(cfg.Level.Boxes); j++ {
			a, b := cfg.Level.Boxes[i], cfg.Level.Boxes[j]
			if abs(a.X-b.X) < cfg.Box.Width*0.99 && abs(a.Y-b.Y) < cfg.Box.Height*0.99 {
				fmt.Printf("⚠️  第 %d 与第 %d 个箱子重叠\n", i+1, j+1)
				overlaps++
			}
		}
	}
	if overlaps > 0 {
		os.Exit(1)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
