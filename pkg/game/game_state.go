package game

import (
	"math/rand"

	"github.com/decker502/duckhunt/pkg/config"
)

// GameState 一局游戏的全部共享状态
//
// 不使用全局单例：每个 HuntScene 持有自己的 GameState，
// 因此可以同时运行多个互不干扰的游戏实例（测试、验证工具）。
type GameState struct {
	Config    *config.GameConfig
	Score     *ScoreKeeper
	Rand      *rand.Rand
	Clock     Clock
	Scheduler *Scheduler
}

// NewGameState 根据配置创建游戏状态
//
// 参数：
//   - cfg: 游戏配置（为 nil 时使用默认配置）
//   - clock: 时钟（为 nil 时使用系统时钟）
//   - seed: 随机数种子，决定鸭子的生成位置和垂直速度
func NewGameState(cfg *config.GameConfig, clock Clock, seed int64) *GameState {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if clock == nil {
		clock = NewTimeProvider()
	}

	return &GameState{
		Config:    cfg,
		Score:     NewScoreKeeper(cfg.ShotsPerRound, cfg.KillsPerLevel, cfg.InitialDuckSpeed),
		Rand:      rand.New(rand.NewSource(seed)),
		Clock:     clock,
		Scheduler: NewScheduler(clock),
	}
}
