package systems

import (
	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/ecs"
)

// LifetimeSystem 管理坠落鸭子的显示时长
// 每个 tick 绘制一次并增加 Age，Age 超过 MaxAge 后标记删除
type LifetimeSystem struct {
	entityManager   *ecs.EntityManager
	animationSystem *AnimationSystem
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager, as *AnimationSystem) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager:   em,
		animationSystem: as,
	}
}

// Update 绘制所有带寿命的实体并清理过期的
//
// 返回:
//   - int: 本 tick 过期的实体数量
func (s *LifetimeSystem) Update() int {
	expired := 0
	entities := ecs.GetEntitiesWith2[*components.LifetimeComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range entities {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		s.animationSystem.Animate(id)
		lifetime.Age++

		if lifetime.Age > lifetime.MaxAge {
			lifetime.IsExpired = true
		}
		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
			expired++
		}
	}
	return expired
}
