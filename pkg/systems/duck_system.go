package systems

import (
	"log"

	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/ecs"
)

// DuckSystem 管理飞行中的鸭子：换帧、绘制、移动和出界清理
type DuckSystem struct {
	entityManager   *ecs.EntityManager
	animationSystem *AnimationSystem
	bounds          config.BoundsConfig
}

// NewDuckSystem 创建一个新的鸭子系统
func NewDuckSystem(em *ecs.EntityManager, as *AnimationSystem, bounds config.BoundsConfig) *DuckSystem {
	return &DuckSystem{
		entityManager:   em,
		animationSystem: as,
		bounds:          bounds,
	}
}

// LiveDucks 返回所有存活的鸭子，按生成顺序排列
func (s *DuckSystem) LiveDucks() []ecs.EntityID {
	return entitiesOfKind(s.entityManager, components.KindDuck)
}

// Update 先绘制再移动每只鸭子，然后删除出界的鸭子
// 出界删除不计分
//
// 返回:
//   - int: 本 tick 出界删除的鸭子数量
func (s *DuckSystem) Update() int {
	ducks := s.LiveDucks()

	for _, id := range ducks {
		s.animationSystem.Animate(id)

		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
			sprite.X += vel.DX
			sprite.Y += vel.DY
		}
	}

	pruned := 0
	for _, id := range ducks {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if s.IsOutOfBounds(sprite) {
			s.entityManager.DestroyEntity(id)
			pruned++
			log.Printf("[DuckSystem] 鸭子 %d 飞出画面 (%.0f, %.0f)", id, sprite.X, sprite.Y)
		}
	}
	return pruned
}

// IsOutOfBounds 判断鸭子是否已离开可见区域
// 只有右、上、下三个方向：鸭子总是从左边飞入
func (s *DuckSystem) IsOutOfBounds(sprite *components.SpriteComponent) bool {
	return sprite.X > s.bounds.MaxX ||
		sprite.Y+sprite.FrameHeight < 0 ||
		sprite.Y > s.bounds.MaxY
}
