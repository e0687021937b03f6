package systems

import (
	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/ecs"
	"github.com/decker502/duckhunt/pkg/game"
)

// AdvanceFrame 推进精灵的帧计数
//
// FramesPerAdvance 为 0 时每次调用都换帧；否则 Cooldown 累加到
// FramesPerAdvance 时换帧并清零。
//
// 返回:
//   - bool: 本次换帧是否从最后一帧回绕到第 0 帧
func AdvanceFrame(sprite *components.SpriteComponent) bool {
	if sprite.FramesPerAdvance > 0 {
		sprite.Cooldown++
		if sprite.Cooldown < sprite.FramesPerAdvance {
			return false
		}
		sprite.Cooldown = 0
	}

	wrapped := false
	if sprite.Frame >= sprite.FrameCount-1 {
		sprite.Frame = 0
		wrapped = true
	} else {
		sprite.Frame++
	}

	game.Invariant(sprite.Frame >= 0 && sprite.Frame < sprite.FrameCount,
		"frame %d out of range [0, %d)", sprite.Frame, sprite.FrameCount)
	return wrapped
}

// AnimationSystem 推进实体的帧动画并立即绘制当前帧
type AnimationSystem struct {
	entityManager *ecs.EntityManager
	renderSystem  *RenderSystem
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager, rs *RenderSystem) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
		renderSystem:  rs,
	}
}

// Animate 先换帧再绘制
// 实体没有 SpriteComponent 时什么也不做
//
// 返回:
//   - bool: 动画是否在本 tick 完成一轮
func (s *AnimationSystem) Animate(id ecs.EntityID) bool {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return false
	}

	wrapped := AdvanceFrame(sprite)
	s.renderSystem.Draw(sprite)
	return wrapped
}
