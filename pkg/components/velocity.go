package components

// VelocityComponent 每个 tick 的位移量（像素/tick）
// 鸭子：DX 由当前关卡速度决定，DY 在生成时随机一次后保持不变
// 狗：只使用 DX
type VelocityComponent struct {
	DX float64
	DY float64
}
