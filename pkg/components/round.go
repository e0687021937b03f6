package components

import "github.com/decker502/duckhunt/pkg/ecs"

// RoundState 回合状态
type RoundState int

const (
	RoundIntroWalk  RoundState = iota // 狗在草地上行走
	RoundIntroJump                    // 狗跳进草丛
	RoundHunting                      // 鸭子飞出，玩家射击
	RoundResolution                   // 鸭子全部离场，结算动画升起
	RoundCooldown                     // 结算动画结束，等待下一回合
)

// String 返回状态名称，用于日志
func (s RoundState) String() string {
	switch s {
	case RoundIntroWalk:
		return "intro_walk"
	case RoundIntroJump:
		return "intro_jump"
	case RoundHunting:
		return "hunting"
	case RoundResolution:
		return "resolution"
	case RoundCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// RoundComponent 回合状态机组件
// 挂在一个专用的回合实体上，由 RoundSystem 独占修改
//
// DogTimer 在开场阶段每个 tick 加一，进入行走阶段时归零：
//   - [0, WalkUntil]            行走
//   - (WalkUntil, JumpUntil)    跳跃
//   - [JumpUntil, FinishAt)     狗藏在草丛里，不绘制
//   - FinishAt                  开场结束，进入狩猎
type RoundComponent struct {
	State       RoundState
	DogTimer    int
	RoundActive bool // 为 true 时接受射击

	WalkingDog ecs.EntityID
	JumpingDog ecs.EntityID
	Banner     ecs.EntityID // 0 表示没有结算动画

	CooldownScheduled bool // 本回合的冷却是否已经排期
	Round             int  // 已开始的回合数（从 1 开始）
}
