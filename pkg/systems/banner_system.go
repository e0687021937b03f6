package systems

import (
	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/ecs"
)

// BannerSystem 播放回合结算动画
// 动画升到停止位置后保持显示，直到下一回合开始时被删除
type BannerSystem struct {
	entityManager   *ecs.EntityManager
	animationSystem *AnimationSystem
}

// NewBannerSystem 创建一个新的结算动画系统
func NewBannerSystem(em *ecs.EntityManager, as *AnimationSystem) *BannerSystem {
	return &BannerSystem{
		entityManager:   em,
		animationSystem: as,
	}
}

// Update 绘制结算动画，未到停止位置时继续上升
//
// 返回:
//   - bool: 是否存在已升到停止位置的结算动画
func (s *BannerSystem) Update() bool {
	finished := false
	entities := ecs.GetEntitiesWith2[*components.BannerComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range entities {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		banner, _ := ecs.GetComponent[*components.BannerComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		s.animationSystem.Animate(id)

		if sprite.Y > banner.StopY {
			sprite.Y += banner.RiseSpeed
		} else {
			banner.IsFinished = true
		}
		if banner.IsFinished {
			finished = true
		}
	}
	return finished
}
