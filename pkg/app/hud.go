package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/duckhunt/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD 画面下方的统计栏：击杀数、关卡和剩余子弹
// 实现 game.StatsSink，每个 tick 接收一次快照
type HUD struct {
	stats  game.Stats
	top    float64 // 统计栏在屏幕上的 Y 坐标
	width  float64
	height float64
	hint   string
}

// 统计栏配色
var (
	hudBackground = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	hudBullet     = color.RGBA{R: 230, G: 180, B: 40, A: 255}
)

// 子弹图标尺寸
const (
	bulletWidth   = 8
	bulletHeight  = 20
	bulletSpacing = 6
)

// NewHUD 创建统计栏
//
// 参数：
//   - top: 统计栏上边缘（游戏画面高度）
//   - width, height: 统计栏尺寸
//   - hint: 右侧的操作提示，为空时不显示
func NewHUD(top, width, height float64, hint string) *HUD {
	return &HUD{top: top, width: width, height: height, hint: hint}
}

// UpdateStats 保存最新快照
func (h *HUD) UpdateStats(stats game.Stats) {
	h.stats = stats
}

// Stats 返回最近一次收到的快照
func (h *HUD) Stats() game.Stats {
	return h.stats
}

// Text 返回统计文字
func (h *HUD) Text() string {
	return fmt.Sprintf("Ducks: %d  Level: %d", h.stats.KillsTotal, h.stats.Level)
}

// BulletRects 返回每发剩余子弹图标的位置，从右向左排列
func (h *HUD) BulletRects() []game.Rect {
	rects := make([]game.Rect, 0, h.stats.ShotsRemaining)
	y := h.top + (h.height-bulletHeight)/2
	x := h.width - bulletSpacing - bulletWidth
	for i := 0; i < h.stats.ShotsRemaining; i++ {
		rects = append(rects, game.Rect{X: x, Y: y, W: bulletWidth, H: bulletHeight})
		x -= bulletWidth + bulletSpacing
	}
	return rects
}

// Draw 绘制统计栏
func (h *HUD) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, float32(h.top), float32(h.width), float32(h.height), hudBackground, false)

	ebitenutil.DebugPrintAt(screen, h.Text(), 8, int(h.top)+4)
	if h.hint != "" {
		ebitenutil.DebugPrintAt(screen, h.hint, 8, int(h.top)+20)
	}

	for _, r := range h.BulletRects() {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), hudBullet, false)
	}
}
