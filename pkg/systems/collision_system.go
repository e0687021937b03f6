package systems

import (
	"log"

	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/ecs"
	"github.com/decker502/duckhunt/pkg/entities"
	"github.com/decker502/duckhunt/pkg/game"
)

// CollisionSystem 处理射击命中检测
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewCollisionSystem 创建一个新的命中检测系统
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// HitBox 返回实体的命中框，左上角与精灵位置对齐
func (s *CollisionSystem) HitBox(id ecs.EntityID) (game.Rect, bool) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return game.Rect{}, false
	}
	box, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return game.Rect{}, false
	}
	return game.Rect{X: sprite.X, Y: sprite.Y, W: box.Width, H: box.Height}, true
}

// TestHit 找出第一只包含点 (x, y) 的鸭子
//
// 参数:
//   - x, y: 点击位置（画面坐标）
//   - ducks: 候选鸭子，按生成顺序排列
//
// 返回:
//   - int: 命中鸭子在 ducks 中的下标
//   - bool: 是否命中
func (s *CollisionSystem) TestHit(x, y float64, ducks []ecs.EntityID) (int, bool) {
	for i, id := range ducks {
		box, ok := s.HitBox(id)
		if !ok {
			continue
		}
		if box.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// Shoot 对 (x, y) 射击，每次最多击中一只鸭子
// 命中时删除鸭子、在原位置生成坠落鸭子并计分
//
// 返回:
//   - ecs.EntityID: 被击中的鸭子
//   - bool: 是否命中
func (s *CollisionSystem) Shoot(x, y float64, ducks []ecs.EntityID) (ecs.EntityID, bool) {
	index, hit := s.TestHit(x, y, ducks)
	if !hit {
		return 0, false
	}

	duckID := ducks[index]
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, duckID)
	entities.NewHuntedDuckEntity(s.entityManager, s.gameState.Config, sprite.X, sprite.Y)
	s.entityManager.DestroyEntity(duckID)

	score := s.gameState.Score
	if score.RecordKill() {
		log.Printf("[CollisionSystem] 升级: 关卡 %d, 鸭子速度 %d", score.Level(), score.DuckSpeed())
	}
	log.Printf("[CollisionSystem] 击中鸭子 %d (%.0f, %.0f), 总击杀 %d", duckID, x, y, score.TotalKills())
	return duckID, true
}
