package components

// SpriteComponent 描述精灵图（sprite sheet）上的一条横向帧动画
//
// 同一动画的所有帧在图集中水平排列在同一行：
//   - FrameWidth 是整条动画条的宽度，单帧宽度为 FrameWidth / FrameCount
//   - SheetRow 是该行在图集中的 Y 坐标（像素）
//
// 帧索引 Frame 始终位于 [0, FrameCount) 区间内，由 AnimationSystem 推进。
type SpriteComponent struct {
	X, Y float64 // 屏幕上的绘制位置（左上角）

	SheetRow         float64 // 图集中的行 Y 坐标
	FrameCount       int     // 帧数
	FrameWidth       float64 // 整条动画条的宽度
	FrameHeight      float64 // 帧高度
	FramesPerAdvance int     // 每隔多少 tick 前进一帧，0 表示每个 tick 都前进

	Frame    int // 当前帧索引
	Cooldown int // 距离上次换帧已经过的 tick 数
}

// CellWidth 返回单帧宽度
func (s *SpriteComponent) CellWidth() float64 {
	if s.FrameCount <= 0 {
		return s.FrameWidth
	}
	return s.FrameWidth / float64(s.FrameCount)
}
