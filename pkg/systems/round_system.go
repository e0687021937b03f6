package systems

import (
	"log"

	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/ecs"
	"github.com/decker502/duckhunt/pkg/entities"
	"github.com/decker502/duckhunt/pkg/game"
)

// RoundSystem 回合状态机
//
// 状态流转：
//
//	IntroWalk → IntroJump → Hunting → Resolution → Cooldown → IntroWalk
//
// 开场阶段由 DogTimer 驱动；狩猎阶段鸭子全部离场后进入结算；
// 结算动画升到位后排期冷却，冷却到期后开始下一回合。
type RoundSystem struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	animationSystem *AnimationSystem
	duckSystem      *DuckSystem
	cues            game.CueSink

	roundEntity ecs.EntityID
}

// NewRoundSystem 创建回合系统，同时创建回合实体和开场用的狗
func NewRoundSystem(em *ecs.EntityManager, gs *game.GameState, as *AnimationSystem, ds *DuckSystem, cues game.CueSink) *RoundSystem {
	return &RoundSystem{
		entityManager:   em,
		gameState:       gs,
		animationSystem: as,
		duckSystem:      ds,
		cues:            cues,
		roundEntity:     entities.NewRoundEntity(em, gs.Config),
	}
}

// Round 返回回合状态组件
func (s *RoundSystem) Round() *components.RoundComponent {
	round, ok := ecs.GetComponent[*components.RoundComponent](s.entityManager, s.roundEntity)
	game.Invariant(ok, "round entity %d has no RoundComponent", s.roundEntity)
	return round
}

// State 返回当前回合状态
func (s *RoundSystem) State() components.RoundState {
	return s.Round().State
}

// IsRoundActive 返回当前是否接受射击
func (s *RoundSystem) IsRoundActive() bool {
	return s.Round().RoundActive
}

// Update 推进一个 tick
// 开场阶段播放狗的动画；狩猎阶段更新鸭子并检查是否进入结算
func (s *RoundSystem) Update() {
	round := s.Round()

	switch round.State {
	case components.RoundIntroWalk, components.RoundIntroJump:
		s.updateIntro(round)
	case components.RoundHunting:
		s.duckSystem.Update()
		s.checkResolution(round)
	case components.RoundResolution, components.RoundCooldown:
		// 结算动画由 BannerSystem 绘制，这里只等待
	}
}

// updateIntro 开场动画：行走、跳跃、藏入草丛，最后放出鸭子
func (s *RoundSystem) updateIntro(round *components.RoundComponent) {
	intro := s.gameState.Config.Intro
	round.DogTimer++

	walkingSprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, round.WalkingDog)

	if round.DogTimer <= intro.WalkUntil {
		s.animationSystem.Animate(round.WalkingDog)
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, round.WalkingDog); ok {
			walkingSprite.X += vel.DX
		}
	} else {
		s.setState(round, components.RoundIntroJump)
		if round.DogTimer < intro.JumpUntil {
			jumpingSprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, round.JumpingDog)
			jumpingSprite.X = walkingSprite.X
			s.animationSystem.Animate(round.JumpingDog)
		}
	}

	if round.DogTimer == intro.FinishAt {
		s.finishIntro(round, walkingSprite)
	}
}

// finishIntro 开场结束：狗叫、狗回到起点、开始接受射击并放出鸭子
func (s *RoundSystem) finishIntro(round *components.RoundComponent, walkingSprite *components.SpriteComponent) {
	s.cues.PlaySound(config.CueDog)
	walkingSprite.X = s.gameState.Config.Sprites.WalkingDog.X
	round.DogTimer = 0
	round.RoundActive = true
	s.SpawnDucks()
	s.setState(round, components.RoundHunting)
}

// SpawnDucks 补充鸭子直到画面上有 DucksOnScreen 只
// 新鸭子使用当前关卡的速度
//
// 返回:
//   - int: 新生成的鸭子数量
func (s *RoundSystem) SpawnDucks() int {
	cfg := s.gameState.Config
	live := len(s.duckSystem.LiveDucks())
	spawned := 0
	for live < cfg.DucksOnScreen {
		entities.NewDuckEntity(s.entityManager, cfg, s.gameState.Score.DuckSpeed(), s.gameState.Rand)
		live++
		spawned++
	}
	return spawned
}

// checkResolution 鸭子全部离场且还没有结算动画时，按本回合击杀数选择结算动画
func (s *RoundSystem) checkResolution(round *components.RoundComponent) {
	if len(s.duckSystem.LiveDucks()) > 0 || round.Banner != 0 {
		return
	}

	kills := s.gameState.Score.KillsThisRound()
	variant := BannerVariantForKills(kills)
	round.Banner = entities.NewBannerEntity(s.entityManager, s.gameState.Config, variant)
	s.cues.PlaySound(BannerCue(variant))
	log.Printf("[RoundSystem] 第 %d 回合结束: 击杀 %d, 结算 %s", round.Round, kills, variant)
	s.setState(round, components.RoundResolution)
}

// BeginCooldown 结算动画结束后调用，安排下一回合
// 同一回合内重复调用只排期一次
func (s *RoundSystem) BeginCooldown() {
	round := s.Round()
	if round.CooldownScheduled {
		return
	}
	round.CooldownScheduled = true
	s.setState(round, components.RoundCooldown)
	s.gameState.Scheduler.After("next_round", s.gameState.Config.Cooldown, s.startNextRound)
}

// startNextRound 冷却到期：清零本回合击杀、补满子弹、移除结算动画
func (s *RoundSystem) startNextRound() {
	round := s.Round()
	s.gameState.Score.ResetRound()

	if round.Banner != 0 {
		s.entityManager.DestroyEntity(round.Banner)
		round.Banner = 0
	}
	round.RoundActive = false
	round.CooldownScheduled = false
	round.DogTimer = 0
	round.Round++
	s.setState(round, components.RoundIntroWalk)
}

// setState 切换状态并记录日志
func (s *RoundSystem) setState(round *components.RoundComponent, next components.RoundState) {
	if round.State == next {
		return
	}
	log.Printf("[RoundSystem] 回合 %d: %s -> %s", round.Round, round.State, next)
	round.State = next
}

// BannerVariantForKills 按本回合击杀数选择结算动画
func BannerVariantForKills(kills int) components.BannerVariant {
	switch {
	case kills <= 0:
		return components.BannerMiss
	case kills == 1:
		return components.BannerOneKill
	default:
		return components.BannerPerfect
	}
}

// BannerCue 返回结算动画对应的音效
func BannerCue(variant components.BannerVariant) string {
	switch variant {
	case components.BannerOneKill:
		return config.CueGotDuck
	case components.BannerPerfect:
		return config.CuePerfect
	default:
		return config.CueLaugh
	}
}
