package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/cannonbox/pkg/app"
	"github.com/decker502/cannonbox/pkg/config"
	"github.com/decker502/cannonbox/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径（.yaml/.yml/.toml），默认使用内置配置")
	debug      = flag.Bool("debug", false, "显示倾倒阈值辅助线")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（resourcesFS 在 embed.go 中声明）
	embedded.Init(resourcesFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Debug:      *debug,
	})
	if err != nil {
		// 日志可能已被丢弃，错误直接写到 stderr
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Cannon Box")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	// 退出前保存最高分与设置
	if !gameApp.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] Warning: some data could not be saved")
	}

	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
