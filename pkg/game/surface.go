package game

import "image/color"

// Rect 轴对齐矩形（像素）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否落在矩形内（左闭右开）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// SheetHandle 精灵图集句柄，由具体的绘制表面解释
// ebiten 前端为 *ebiten.Image，终端前端忽略该值
type SheetHandle interface{}

// Surface 绘制表面
// 核心逻辑只发出绘制指令，不关心具体实现
type Surface interface {
	// DrawSprite 将图集 sheet 中的 src 区域绘制到 dst 位置
	DrawSprite(sheet SheetHandle, src, dst Rect)
	// ClearRect 用纯色填充矩形区域
	ClearRect(r Rect, c color.RGBA)
}
