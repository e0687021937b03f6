package systems

import (
	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/ecs"
)

// entitiesOfKind 返回指定变体的存活实体，按创建顺序排列
// 已标记删除但尚未清理的实体不包含在内
func entitiesOfKind(em *ecs.EntityManager, kind components.EntityKind) []ecs.EntityID {
	candidates := ecs.GetEntitiesWith2[*components.KindComponent, *components.SpriteComponent](em)
	result := make([]ecs.EntityID, 0, len(candidates))
	for _, id := range candidates {
		kindComp, _ := ecs.GetComponent[*components.KindComponent](em, id)
		if kindComp.Kind == kind && em.IsAlive(id) {
			result = append(result, id)
		}
	}
	return result
}
