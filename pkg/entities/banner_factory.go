package entities

import (
	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/ecs"
)

// BannerSpriteDef 返回结算种类对应的精灵定义
func BannerSpriteDef(cfg *config.GameConfig, variant components.BannerVariant) config.SpriteDef {
	switch variant {
	case components.BannerOneKill:
		return cfg.Sprites.BannerOneKill
	case components.BannerPerfect:
		return cfg.Sprites.BannerPerfect
	default:
		return cfg.Sprites.BannerMiss
	}
}

// NewBannerEntity 创建回合结算动画（狗从草丛中升起）
func NewBannerEntity(em *ecs.EntityManager, cfg *config.GameConfig, variant components.BannerVariant) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: components.KindBanner})
	ecs.AddComponent(em, entityID, newSpriteFromDef(BannerSpriteDef(cfg, variant)))
	ecs.AddComponent(em, entityID, &components.BannerComponent{
		Variant:   variant,
		RiseSpeed: cfg.Banner.RiseSpeed,
		StopY:     cfg.Banner.StopY,
	})
	return entityID
}
