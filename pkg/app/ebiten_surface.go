package app

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/decker502/duckhunt/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 把核心逻辑的绘制指令画到一张离屏图像上
// App.Draw 每帧把离屏图像贴到屏幕，因此绘制频率与 tick 频率解耦
type EbitenSurface struct {
	canvas    *ebiten.Image
	badSheets int
}

// NewEbitenSurface 创建指定逻辑尺寸的绘制表面
func NewEbitenSurface(width, height int) *EbitenSurface {
	return &EbitenSurface{
		canvas: ebiten.NewImage(width, height),
	}
}

// Image 返回离屏图像
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.canvas
}

// DrawSprite 把图集中的 src 区域绘制到 dst
func (s *EbitenSurface) DrawSprite(sheet game.SheetHandle, src, dst game.Rect) {
	img, ok := sheet.(*ebiten.Image)
	if !ok || img == nil {
		if s.badSheets == 0 {
			log.Printf("[EbitenSurface] Warning: unsupported sheet handle %T", sheet)
		}
		s.badSheets++
		return
	}

	region := sheetRegion(src)
	if region.Empty() {
		return
	}
	sub := img.SubImage(region).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(region, dst)
	s.canvas.DrawImage(sub, op)
}

// ClearRect 用纯色填充矩形
func (s *EbitenSurface) ClearRect(r game.Rect, c color.RGBA) {
	vector.DrawFilledRect(s.canvas, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// sheetRegion 把浮点源矩形对齐到像素
// 帧宽不一定是整数（例如 175/3），四舍五入到最近的像素边界
func sheetRegion(src game.Rect) image.Rectangle {
	x0 := int(math.Round(src.X))
	y0 := int(math.Round(src.Y))
	x1 := int(math.Round(src.X + src.W))
	y1 := int(math.Round(src.Y + src.H))
	return image.Rect(x0, y0, x1, y1)
}

// spriteGeoM 计算把 region 放到 dst 的变换
func spriteGeoM(region image.Rectangle, dst game.Rect) ebiten.GeoM {
	var geoM ebiten.GeoM
	w, h := float64(region.Dx()), float64(region.Dy())
	if w > 0 && h > 0 && (w != dst.W || h != dst.H) {
		geoM.Scale(dst.W/w, dst.H/h)
	}
	geoM.Translate(dst.X, dst.Y)
	return geoM
}
