package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/duckhunt/pkg/config"
	"github.com/decker502/duckhunt/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// cellSprite 终端里代表某一类精灵的字符和样式
type cellSprite struct {
	glyph rune
	style tcell.Style
}

// termSurface 把游戏画面按比例缩放到终端字符格
// 精灵按图集中的行区分种类，每类用一个字符和颜色填充目标矩形
type termSurface struct {
	screen  tcell.Screen
	width   float64 // 逻辑画面尺寸
	height  float64
	cols    int // 用于画面的字符格数，最后一行留给统计栏
	rows    int
	sprites map[float64]cellSprite
	unknown cellSprite
}

func newTermSurface(screen tcell.Screen, cfg *config.GameConfig) (*termSurface, error) {
	s := &termSurface{
		screen:  screen,
		width:   float64(cfg.Screen.Width),
		height:  float64(cfg.Screen.Height),
		sprites: make(map[float64]cellSprite),
		unknown: cellSprite{glyph: '?', style: tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	}

	brown := tcell.NewRGBColor(140, 90, 40)
	kinds := []struct {
		name   string
		def    config.SpriteDef
		sprite cellSprite
	}{
		{"duck", cfg.Sprites.Duck, cellSprite{glyph: 'V', style: tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)}},
		{"huntedDuck", cfg.Sprites.HuntedDuck, cellSprite{glyph: 'x', style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)}},
		{"walkingDog", cfg.Sprites.WalkingDog, cellSprite{glyph: 'd', style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(brown)}},
		{"jumpingDog", cfg.Sprites.JumpingDog, cellSprite{glyph: 'D', style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(brown)}},
		{"bannerMiss", cfg.Sprites.BannerMiss, cellSprite{glyph: '-', style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)}},
		{"bannerOneKill", cfg.Sprites.BannerOneKill, cellSprite{glyph: '+', style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen)}},
		{"bannerPerfect", cfg.Sprites.BannerPerfect, cellSprite{glyph: '*', style: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)}},
	}

	// 精灵种类只能通过图集行区分，行重复时无法绘制
	owners := make(map[float64]string, len(kinds))
	for _, k := range kinds {
		if owner, dup := owners[k.def.Row]; dup {
			return nil, fmt.Errorf("sprites %s and %s share sheet row %v", owner, k.name, k.def.Row)
		}
		owners[k.def.Row] = k.name
		s.sprites[k.def.Row] = k.sprite
	}

	s.resize()
	return s, nil
}

// resize 在终端尺寸变化后重新计算画面区域
func (s *termSurface) resize() {
	cols, rows := s.screen.Size()
	s.cols = max(cols, 1)
	s.rows = max(rows-1, 1)
}

// toCells 把逻辑矩形转换为字符格范围 [x0, x1) x [y0, y1)
// 至少占一个字符格，保证小精灵可见
func (s *termSurface) toCells(r game.Rect) (x0, y0, x1, y1 int) {
	sx := float64(s.cols) / s.width
	sy := float64(s.rows) / s.height
	x0 = int(math.Floor(r.X * sx))
	y0 = int(math.Floor(r.Y * sy))
	x1 = max(int(math.Ceil((r.X+r.W)*sx)), x0+1)
	y1 = max(int(math.Ceil((r.Y+r.H)*sy)), y0+1)
	return max(x0, 0), max(y0, 0), min(x1, s.cols), min(y1, s.rows)
}

// toGame 把字符格中心转换为逻辑坐标
func (s *termSurface) toGame(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * s.width / float64(s.cols)
	y := (float64(row) + 0.5) * s.height / float64(s.rows)
	return x, y
}

// inPlayfield 判断字符格是否在画面区域内
func (s *termSurface) inPlayfield(col, row int) bool {
	return col >= 0 && col < s.cols && row >= 0 && row < s.rows
}

func (s *termSurface) fill(r game.Rect, glyph rune, style tcell.Style) {
	x0, y0, x1, y1 := s.toCells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// DrawSprite 用精灵种类对应的字符填充目标区域
func (s *termSurface) DrawSprite(_ game.SheetHandle, src, dst game.Rect) {
	sprite, ok := s.sprites[src.Y]
	if !ok {
		sprite = s.unknown
	}
	s.fill(dst, sprite.glyph, sprite.style)
}

// ClearRect 用背景色填充
func (s *termSurface) ClearRect(r game.Rect, c color.RGBA) {
	bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	s.fill(r, ' ', tcell.StyleDefault.Background(bg))
}

// drawStatus 在最后一行绘制统计信息
func (s *termSurface) drawStatus(text string) {
	row := s.rows
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	col := 0
	for _, r := range text {
		if col >= s.cols {
			break
		}
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < s.cols; col++ {
		s.screen.SetContent(col, row, ' ', nil, style)
	}
}
