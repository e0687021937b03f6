package components

// LifetimeComponent 以 tick 计数的实体寿命
// 用于被击中的鸭子：每绘制一次 Age 加一，Age 超过 MaxAge 后删除
type LifetimeComponent struct {
	MaxAge    int  // 最大存活 tick 数
	Age       int  // 已存活 tick 数
	IsExpired bool // 是否已过期
}
