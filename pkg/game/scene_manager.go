package game

import (
	"log"
)

// SceneFactory 场景工厂函数类型
// 每次调用创建一局全新的游戏，避免 game 包依赖 scenes 包
type SceneFactory func() (Scene, error)

// SceneManager manages which scene is active.
// Only the active scene receives ticks and clicks.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于重新开始
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restart 用工厂函数创建新的一局并切换过去
// 创建失败时保留当前场景
func (sm *SceneManager) Restart() bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene, err := sm.sceneFactory()
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %v", err)
		return false
	}

	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 新的一局已开始")
	return true
}

// Tick advances the active scene. Does nothing without one.
func (sm *SceneManager) Tick() {
	if sm.currentScene != nil {
		sm.currentScene.Tick()
	}
}

// HandleClick forwards a click to the active scene.
func (sm *SceneManager) HandleClick(x, y float64) bool {
	if sm.currentScene == nil {
		return false
	}
	return sm.currentScene.HandleClick(x, y)
}
