// Package utils 提供与平台相关的小工具
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPress 一次刚发生的点击或触摸
type PointerPress struct {
	X, Y    int
	IsTouch bool
}

// AppendJustPressedPointers 把本帧新发生的触摸和鼠标左键点击追加到 presses
// 每个新触摸点各算一次点击，触摸在前、鼠标在后
func AppendJustPressedPointers(presses []PointerPress) []PointerPress {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		presses = append(presses, PointerPress{X: x, Y: y, IsTouch: true})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		presses = append(presses, PointerPress{X: x, Y: y})
	}

	return presses
}
