package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/ecs"
	"github.com/decker502/duckhunt/pkg/game"
	"github.com/decker502/duckhunt/pkg/systems"
)

// HuntScene 一局打鸭子游戏
//
// Tick 是唯一的推进入口，驱动方（ebiten、终端、测试）负责按目标频率调用；
// 点击在两个 tick 之间通过 HandleClick 送入，与 Tick 在同一个 goroutine 上执行。
//
// 每个 HuntScene 持有自己的 GameState，多个实例互不影响。
type HuntScene struct {
	gameState     *game.GameState
	entityManager *ecs.EntityManager
	stats         game.StatsSink
	cues          game.CueSink

	renderSystem    *systems.RenderSystem
	animationSystem *systems.AnimationSystem
	lifetimeSystem  *systems.LifetimeSystem
	bannerSystem    *systems.BannerSystem
	duckSystem      *systems.DuckSystem
	collisionSystem *systems.CollisionSystem
	roundSystem     *systems.RoundSystem

	tickCount int
}

// NewHuntScene 创建一局新游戏
//
// 参数:
//   - gs: 游戏状态（配置、计分、随机数、时钟）
//   - surface: 绘制目标
//   - sheet: 精灵图集，必须已经加载完成
//   - cues: 音效输出，可为 nil
//   - stats: 统计信息输出，可为 nil
//
// 返回:
//   - error: sheet 为 nil 时返回包装后的 game.ErrAssetNotReady
func NewHuntScene(gs *game.GameState, surface game.Surface, sheet game.SheetHandle, cues game.CueSink, stats game.StatsSink) (*HuntScene, error) {
	if gs == nil {
		return nil, errors.New("hunt scene: nil game state")
	}
	if surface == nil {
		return nil, errors.New("hunt scene: nil surface")
	}
	if sheet == nil {
		return nil, fmt.Errorf("hunt scene: sprite sheet: %w", game.ErrAssetNotReady)
	}
	if cues == nil {
		cues = discardCues{}
	}
	if stats == nil {
		stats = discardStats{}
	}

	cfg := gs.Config
	em := ecs.NewEntityManager()
	screen := game.Rect{W: float64(cfg.Screen.Width), H: float64(cfg.Screen.Height)}

	s := &HuntScene{
		gameState:     gs,
		entityManager: em,
		stats:         stats,
		cues:          cues,
	}
	s.renderSystem = systems.NewRenderSystem(surface, sheet, screen, cfg.BackgroundColor())
	s.animationSystem = systems.NewAnimationSystem(em, s.renderSystem)
	s.lifetimeSystem = systems.NewLifetimeSystem(em, s.animationSystem)
	s.bannerSystem = systems.NewBannerSystem(em, s.animationSystem)
	s.duckSystem = systems.NewDuckSystem(em, s.animationSystem, cfg.Bounds)
	s.collisionSystem = systems.NewCollisionSystem(em, gs)
	s.roundSystem = systems.NewRoundSystem(em, gs, s.animationSystem, s.duckSystem, cues)

	log.Printf("[HuntScene] 新游戏: %d 只鸭子/回合, %d 发子弹, 冷却 %s", cfg.DucksOnScreen, cfg.ShotsPerRound, cfg.Cooldown)
	return s, nil
}

// Tick 推进一个 tick
//
// 顺序：
//  1. 执行已到期的延迟动作（下一回合开始）
//  2. 发送统计快照
//  3. 清空画面
//  4. 绘制坠落鸭子并清理过期的
//  5. 绘制结算动画，升到位后排期冷却
//  6. 推进回合状态机（开场或狩猎）
func (s *HuntScene) Tick() {
	s.tickCount++

	if s.gameState.Scheduler.RunDue() > 0 {
		s.entityManager.RemoveMarkedEntities()
	}

	s.stats.UpdateStats(s.gameState.Score.Snapshot())
	s.renderSystem.Clear()

	s.lifetimeSystem.Update()
	s.entityManager.RemoveMarkedEntities()

	if s.bannerSystem.Update() {
		s.roundSystem.BeginCooldown()
	}

	s.roundSystem.Update()
	s.entityManager.RemoveMarkedEntities()
}

// HandleClick 处理一次点击
// 只有回合进行中且还有子弹时才接受；被接受的点击消耗一发子弹，
// 无论是否命中
//
// 返回:
//   - bool: 点击是否被接受
func (s *HuntScene) HandleClick(x, y float64) bool {
	score := s.gameState.Score
	if !s.roundSystem.IsRoundActive() || score.ShotsRemaining() <= 0 {
		return false
	}

	score.UseShot()
	s.cues.PlaySound(config.CueShoot)
	s.collisionSystem.Shoot(x, y, s.duckSystem.LiveDucks())
	s.entityManager.RemoveMarkedEntities()
	return true
}

// GameState 返回本局的游戏状态
func (s *HuntScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 返回本局的实体管理器
func (s *HuntScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// RoundState 返回当前回合状态
func (s *HuntScene) RoundState() components.RoundState {
	return s.roundSystem.State()
}

// Round 返回当前回合编号（从 1 开始）
func (s *HuntScene) Round() int {
	return s.roundSystem.Round().Round
}

// IsRoundActive 返回当前是否接受射击
func (s *HuntScene) IsRoundActive() bool {
	return s.roundSystem.IsRoundActive()
}

// LiveDucks 返回存活鸭子的命中框，按生成顺序排列
func (s *HuntScene) LiveDucks() []game.Rect {
	ducks := s.duckSystem.LiveDucks()
	boxes := make([]game.Rect, 0, len(ducks))
	for _, id := range ducks {
		if box, ok := s.collisionSystem.HitBox(id); ok {
			boxes = append(boxes, box)
		}
	}
	return boxes
}

// TickCount 返回已执行的 tick 数
func (s *HuntScene) TickCount() int {
	return s.tickCount
}

// discardCues 丢弃所有音效请求
type discardCues struct{}

func (discardCues) PlaySound(string) bool { return false }

// discardStats 丢弃所有统计快照
type discardStats struct{}

func (discardStats) UpdateStats(game.Stats) {}
