// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/cannonbox/pkg/config"
	"github.com/decker502/cannonbox/pkg/embedded"
	"github.com/decker502/cannonbox/pkg/game"
	"github.com/decker502/cannonbox/pkg/scenes"
	"github.com/decker502/cannonbox/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	// AppName gdata 存储目录名
	AppName = "cannonbox"

	// SampleRate 音频采样率
	SampleRate = 48000

	// bundledConfigPath 嵌入的默认配置
	bundledConfigPath = "data/game.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件（.yaml/.yml/.toml），为空则使用嵌入的 data/game.yaml
	ConfigPath string
	// Debug 启动时显示倾倒阈值辅助线
	Debug bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	// 初始化音频上下文与片段缓存
	audioContext := audio.NewContext(SampleRate)
	resourceManager := game.NewResourceManager(SampleRate)

	// 存储不可用时设置与最高分只保存在内存中
	gdataManager := openStorage()
	settings := game.NewSettingsManager(gdataManager)
	highScore := game.NewHighScoreStore(gdataManager)

	if cfg.Debug {
		settings.SetShowDebugOverlay(true)
	}
	if settings.GetSettings().Fullscreen && !utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		scene, err := scenes.NewGameScene(scenes.GameSceneDeps{
			Config:          gameConfig,
			SceneManager:    sceneManager,
			AudioContext:    audioContext,
			ResourceManager: resourceManager,
			Settings:        settings,
			HighScore:       highScore,
		})
		if err != nil {
			return nil, err
		}
		return scene, nil
	})

	if err := sceneManager.Restart(); err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}
	log.Printf("[App] Game started with %d boxes", len(gameConfig.Level.Boxes))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameConfig 依次尝试：外部文件 → 嵌入配置 → 内置默认值
// 外部文件出错直接返回错误；嵌入配置出错时回退到默认值
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading game config from %s", path)
		return config.LoadGameConfig(path)
	}

	if embedded.IsInitialized() && embedded.Exists(bundledConfigPath) {
		data, err := embedded.ReadFile(bundledConfigPath)
		if err == nil {
			cfg, parseErr := config.ParseGameConfig(data, "yaml")
			if parseErr == nil {
				log.Printf("[Config] Loaded bundled %s", bundledConfigPath)
				return cfg, nil
			}
			err = parseErr
		}
		log.Printf("[Config] Warning: bundled config unusable: %v (using defaults)", err)
	}

	return config.DefaultGameConfig(), nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级模式）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings and scores kept in memory)", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(!isFullscreen)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存最高分与设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
