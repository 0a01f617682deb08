// verify_topple 无窗口运行一局模拟，打印倾倒与得分情况
//
// 用法:
//
//	go run ./cmd/verify_topple
//	go run ./cmd/verify_topple -config data/game.yaml -seconds 20 -fire-every 0.5 -angle 10
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/decker502/cannonbox/pkg/config"
	"github.com/decker502/cannonbox/pkg/game"
	"github.com/decker502/cannonbox/pkg/scenes"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径，默认使用内置默认值")
	seconds    = flag.Float64("seconds", 15, "模拟时长（秒）")
	fireEvery  = flag.Float64("fire-every", 0.5, "自动发射间隔（秒），0 表示不发射")
	angle      = flag.Float64("angle", 10, "炮管角度（度）")
)

const deltaTime = 1.0 / 60.0

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	label := &game.TextLabel{}
	score := game.NewScoreBoard(label, nil)

	sim, err := scenes.NewSimulation(scenes.SimulationOptions{
		Config: cfg,
		Score:  score,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 模拟创建失败: %v\n", err)
		os.Exit(1)
	}
	sim.SetCannonRotation(*angle)

	total := len(sim.Boxes())
	ticks := int(*seconds / deltaTime)
	shots := 0
	nextFire := 0.0

	for i := 0; i < ticks; i++ {
		now := float64(i) * deltaTime
		if *fireEvery > 0 && now >= nextFire {
			if sim.FireCannon() {
				shots++
			}
			nextFire = now + *fireEvery
		}
		sim.Update(deltaTime)
	}

	counts := map[components.BoxState]int{}
	for _, id := range sim.Boxes() {
		state, _ := sim.BoxState(id)
		counts[state]++
	}

	fmt.Printf("模拟 %.1f 秒，炮管 %.1f°，发射 %d 发\n", *seconds, sim.CannonRotation(), shots)
	fmt.Printf("箱子: 共 %d，已移除 %d\n", total, total-len(sim.Boxes()))
	for _, state := range []components.BoxState{
		components.BoxUpright,
		components.BoxToppled,
		components.BoxSettled,
		components.BoxFadingOut,
	} {
		fmt.Printf("  %-10s %d\n", state, counts[state])
	}
	fmt.Printf("得分: %s\n", label.Text())
}
