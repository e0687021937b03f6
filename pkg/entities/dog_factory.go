package entities

import (
	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/ecs"
)

// NewWalkingDogEntity 创建开场行走的狗
// 狗在整局游戏中只创建一次，每回合开场结束时重置 X 坐标
func NewWalkingDogEntity(em *ecs.EntityManager, cfg *config.GameConfig) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: components.KindWalkingDog})
	ecs.AddComponent(em, entityID, newSpriteFromDef(cfg.Sprites.WalkingDog))
	ecs.AddComponent(em, entityID, &components.VelocityComponent{DX: cfg.Intro.WalkSpeed})
	return entityID
}

// NewJumpingDogEntity 创建跳入草丛的狗
// 没有速度组件：绘制前 X 坐标跟随行走的狗
func NewJumpingDogEntity(em *ecs.EntityManager, cfg *config.GameConfig) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: components.KindJumpingDog})
	ecs.AddComponent(em, entityID, newSpriteFromDef(cfg.Sprites.JumpingDog))
	return entityID
}
