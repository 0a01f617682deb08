package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/cannonbox/pkg/config"
	"github.com/decker502/cannonbox/pkg/game"
	"github.com/decker502/cannonbox/pkg/systems"
	"github.com/decker502/cannonbox/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameSceneDeps 游戏场景依赖
type GameSceneDeps struct {
	Config          *config.GameConfig
	SceneManager    *game.SceneManager
	AudioContext    *audio.Context        // 可为 nil（无声）
	ResourceManager *game.ResourceManager // 跨场景共享的音频片段缓存
	Settings        *game.SettingsManager // 可为 nil
	HighScore       *game.HighScoreStore  // 可为 nil
}

// GameScene 游戏主场景
//
// 在 Simulation 之上增加键盘输入、渲染、计分显示与最高分保存。
// 按 R 重新开始（通过 SceneManager 重建场景），按 F3 切换调试辅助线。
type GameScene struct {
	sim          *Simulation
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	highScore    *game.HighScoreStore
	audio        *game.AudioManager

	scoreLabel *game.TextLabel
	scoreBoard *game.ScoreBoard
	render     *systems.RenderSystem

	showDebug bool
}

// NewGameScene 创建游戏场景
func NewGameScene(deps GameSceneDeps) (*GameScene, error) {
	var am *game.AudioManager
	if deps.AudioContext != nil && deps.ResourceManager != nil {
		am = game.NewAudioManager(deps.AudioContext, deps.ResourceManager, deps.Settings)
	}

	label := &game.TextLabel{}
	board := game.NewScoreBoard(label, deps.HighScore)

	sim, err := NewSimulation(SimulationOptions{
		Config: deps.Config,
		Input: &utils.KeyboardCannonInput{
			ScreenWidth:  config.ScreenWidth,
			ScreenHeight: config.ScreenHeight,
		},
		Score: board,
		Audio: am,
	})
	if err != nil {
		am.ReleaseAll()
		return nil, fmt.Errorf("failed to build game scene: %w", err)
	}

	scene := &GameScene{
		sim:          sim,
		sceneManager: deps.SceneManager,
		settings:     deps.Settings,
		highScore:    deps.HighScore,
		audio:        am,
		scoreLabel:   label,
		scoreBoard:   board,
		render:       systems.NewRenderSystem(sim.EntityManager()),
	}
	if deps.Settings != nil {
		scene.showDebug = deps.Settings.GetSettings().ShowDebugOverlay
	}
	return scene, nil
}

// Update 处理场景快捷键并推进模拟
func (gs *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && gs.sceneManager != nil {
		if err := gs.sceneManager.Restart(); err != nil {
			log.Printf("[GameScene] Warning: Failed to restart: %v", err)
		} else {
			return
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		gs.showDebug = !gs.showDebug
		if gs.settings != nil {
			gs.settings.SetShowDebugOverlay(gs.showDebug)
		}
	}

	gs.sim.Update(deltaTime)
}

// Draw 绘制世界、HUD 与调试层
func (gs *GameScene) Draw(screen *ebiten.Image) {
	gs.render.Draw(screen)

	best := gs.scoreBoard.Total()
	if gs.highScore != nil && gs.highScore.Best() > best {
		best = gs.highScore.Best()
	}
	gs.render.DrawHUD(screen, gs.scoreLabel.Text(), best)

	if gs.showDebug {
		gs.render.DrawDebug(screen)
	}
}

// SaveOnExit 保存最高分与设置
func (gs *GameScene) SaveOnExit() bool {
	ok := true
	if gs.highScore != nil {
		if err := gs.highScore.Save(); err != nil {
			log.Printf("[GameScene] Warning: Failed to save high score: %v", err)
			ok = false
		}
	}
	if gs.settings != nil {
		if err := gs.settings.Save(); err != nil {
			log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
			ok = false
		}
	}
	return ok
}

// Dispose 释放本场景创建的音频播放器
func (gs *GameScene) Dispose() {
	gs.audio.ReleaseAll()
}

// Score 当前得分
func (gs *GameScene) Score() int {
	return gs.scoreBoard.Total()
}

// Simulation 底层模拟
func (gs *GameScene) Simulation() *Simulation {
	return gs.sim
}
