package systems

import (
	"image/color"

	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/game"
)

// RenderSystem 把精灵组件翻译成绘制表面上的绘制指令
//
// 职责范围：
//   - 计算图集中当前帧的源矩形和屏幕上的目标矩形
//   - 每个 tick 开始时用背景色清空画面
//
// 不包括：
//   - 绘制表面的具体实现（ebiten、终端、测试记录）
type RenderSystem struct {
	surface    game.Surface
	sheet      game.SheetHandle
	screen     game.Rect
	background color.RGBA
}

// NewRenderSystem 创建一个新的渲染系统
//
// 参数:
//   - surface: 绘制目标
//   - sheet: 精灵图集句柄
//   - screen: 每个 tick 清空的区域
//   - background: 背景色
func NewRenderSystem(surface game.Surface, sheet game.SheetHandle, screen game.Rect, background color.RGBA) *RenderSystem {
	return &RenderSystem{
		surface:    surface,
		sheet:      sheet,
		screen:     screen,
		background: background,
	}
}

// SourceRect 返回当前帧在图集中的区域
func SourceRect(sprite *components.SpriteComponent) game.Rect {
	cell := sprite.CellWidth()
	return game.Rect{
		X: cell * float64(sprite.Frame),
		Y: sprite.SheetRow,
		W: cell,
		H: sprite.FrameHeight,
	}
}

// DestRect 返回精灵在屏幕上的区域，尺寸与源区域相同
func DestRect(sprite *components.SpriteComponent) game.Rect {
	return game.Rect{
		X: sprite.X,
		Y: sprite.Y,
		W: sprite.CellWidth(),
		H: sprite.FrameHeight,
	}
}

// Clear 用背景色填充整个画面
func (s *RenderSystem) Clear() {
	s.surface.ClearRect(s.screen, s.background)
}

// Draw 绘制精灵的当前帧
func (s *RenderSystem) Draw(sprite *components.SpriteComponent) {
	s.surface.DrawSprite(s.sheet, SourceRect(sprite), DestRect(sprite))
}
