package systems

import (
	"time"

	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/ecs"
	"github.com/decker502/duckhunt/pkg/game"
)

// testSheet 测试用的图集句柄，RecordingSurface 只记录不解释
const testSheet = "duckhunt.png"

// testWorld 测试用的最小游戏环境
type testWorld struct {
	em      *ecs.EntityManager
	state   *game.GameState
	clock   *game.MockTimeProvider
	surface *game.RecordingSurface
	cues    *game.RecordingCueSink
	render  *RenderSystem
	anim    *AnimationSystem
}

// newTestWorld 使用默认配置、模拟时钟和固定种子创建测试环境
func newTestWorld(seed int64) *testWorld {
	cfg := config.DefaultGameConfig()
	clock := game.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	w := &testWorld{
		em:      ecs.NewEntityManager(),
		state:   game.NewGameState(cfg, clock, seed),
		clock:   clock,
		surface: &game.RecordingSurface{},
		cues:    &game.RecordingCueSink{},
	}
	screen := game.Rect{W: float64(cfg.Screen.Width), H: float64(cfg.Screen.Height)}
	w.render = NewRenderSystem(w.surface, testSheet, screen, cfg.BackgroundColor())
	w.anim = NewAnimationSystem(w.em, w.render)
	return w
}

// sprite 获取实体的精灵组件，不存在时返回 nil
func (w *testWorld) sprite(id ecs.EntityID) *components.SpriteComponent {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.em, id)
	return sprite
}

// placeDuck 把鸭子放到指定位置并设置速度
func (w *testWorld) placeDuck(id ecs.EntityID, x, y, dx, dy float64) {
	sprite := w.sprite(id)
	sprite.X, sprite.Y = x, y
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, id)
	vel.DX, vel.DY = dx, dy
}
