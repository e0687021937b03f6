package components

// CollisionComponent 定义实体的命中检测边界框
// 边界框左上角与 SpriteComponent 的 (X, Y) 对齐
// 鸭子的宽度是单帧宽度，而不是整条动画条的宽度
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
