package entities

import (
	"math/rand"

	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/ecs"
)

// NewDuckEntity 创建一只从左侧飞入的鸭子
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（精灵定义、生成范围）
//   - speed: 水平速度（当前关卡的鸭子速度）
//   - rng: 随机数源，决定起始高度和垂直速度
//
// 返回:
//   - ecs.EntityID: 鸭子实体ID
//
// 起始 Y 在 [0, DuckSpawnMaxY] 内均匀分布；
// 垂直速度在 [-DuckMaxDY, DuckMaxDY) 内均匀分布，生成后不再改变。
func NewDuckEntity(em *ecs.EntityManager, cfg *config.GameConfig, speed int, rng *rand.Rand) ecs.EntityID {
	def := cfg.Sprites.Duck
	sprite := newSpriteFromDef(def)
	sprite.Y = float64(rng.Intn(cfg.DuckSpawnMaxY + 1))

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: components.KindDuck})
	ecs.AddComponent(em, entityID, sprite)
	ecs.AddComponent(em, entityID, &components.VelocityComponent{
		DX: float64(speed),
		DY: rng.Float64()*2*cfg.DuckMaxDY - cfg.DuckMaxDY,
	})
	// 命中框只有一帧宽
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  sprite.CellWidth(),
		Height: sprite.FrameHeight,
	})

	return entityID
}

// NewHuntedDuckEntity 在被击中鸭子的位置创建坠落鸭子
// 坠落鸭子只显示 HuntedDuckMaxAge+1 个 tick，不参与命中检测
func NewHuntedDuckEntity(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	sprite := newSpriteFromDef(cfg.Sprites.HuntedDuck)
	sprite.X = x
	sprite.Y = y

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: components.KindHuntedDuck})
	ecs.AddComponent(em, entityID, sprite)
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		MaxAge: cfg.HuntedDuckMaxAge,
	})

	return entityID
}
