package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoSceneFactory 场景工厂未设置
var ErrNoSceneFactory = errors.New("scene factory not set")

// SceneFactory 场景工厂函数类型
// 每次调用返回一个全新的场景，用于开局与重开
type SceneFactory func() (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Restart to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// 旧场景若实现 Saveable / Disposable，会先保存再释放。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if old := sm.currentScene; old != nil && old != scene {
		if s, ok := old.(Saveable); ok {
			s.SaveOnExit()
		}
		if d, ok := old.(Disposable); ok {
			d.Dispose()
		}
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restart 通过工厂创建新场景并切换
// 创建失败时保留当前场景
func (sm *SceneManager) Restart() error {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return ErrNoSceneFactory
	}

	newScene, err := sm.sceneFactory()
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %v", err)
		return err
	}

	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 场景已重新开始")
	return nil
}

// SaveOnExit 让当前场景在程序退出前保存状态
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
