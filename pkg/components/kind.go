package components

// EntityKind 实体变体标签
// 所有可绘制实体共享 SpriteComponent，按 Kind 分派各自的更新逻辑
type EntityKind int

const (
	KindDuck       EntityKind = iota // 飞行中的鸭子
	KindHuntedDuck                   // 被击中的鸭子（短暂显示）
	KindWalkingDog                   // 开场行走的狗
	KindJumpingDog                   // 开场跳入草丛的狗
	KindBanner                       // 回合结算时升起的狗
)

// String 返回变体名称，用于日志
func (k EntityKind) String() string {
	switch k {
	case KindDuck:
		return "duck"
	case KindHuntedDuck:
		return "hunted_duck"
	case KindWalkingDog:
		return "walking_dog"
	case KindJumpingDog:
		return "jumping_dog"
	case KindBanner:
		return "banner"
	default:
		return "unknown"
	}
}

// KindComponent 标记实体所属的变体
type KindComponent struct {
	Kind EntityKind
}
