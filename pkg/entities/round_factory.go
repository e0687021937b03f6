package entities

import (
	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/ecs"
)

// NewRoundEntity 创建回合状态实体，同时创建两只开场用的狗
// 初始状态为 IntroWalk，第一回合编号为 1
func NewRoundEntity(em *ecs.EntityManager, cfg *config.GameConfig) ecs.EntityID {
	walkingDog := NewWalkingDogEntity(em, cfg)
	jumpingDog := NewJumpingDogEntity(em, cfg)

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.RoundComponent{
		State:      components.RoundIntroWalk,
		WalkingDog: walkingDog,
		JumpingDog: jumpingDog,
		Round:      1,
	})
	return entityID
}
