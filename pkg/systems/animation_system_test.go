package systems

import (
	"testing"

	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/game"
)

// TestAdvanceFrameEveryTick 三帧动画每个 tick 换帧，回绕时报告完成
func TestAdvanceFrameEveryTick(t *testing.T) {
	sprite := &components.SpriteComponent{FrameCount: 3, FrameWidth: 120, FrameHeight: 30}

	wantFrames := []int{1, 2, 0, 1, 2, 0}
	wantWrapped := []bool{false, false, true, false, false, true}
	for i := range wantFrames {
		wrapped := AdvanceFrame(sprite)
		if sprite.Frame != wantFrames[i] || wrapped != wantWrapped[i] {
			t.Errorf("step %d: frame=%d wrapped=%v, want frame=%d wrapped=%v",
				i, sprite.Frame, wrapped, wantFrames[i], wantWrapped[i])
		}
	}
}

// TestAdvanceFrameWithDelay 每 2 个 tick 换一帧
func TestAdvanceFrameWithDelay(t *testing.T) {
	sprite := &components.SpriteComponent{FrameCount: 3, FramesPerAdvance: 2}

	wantFrames := []int{0, 1, 1, 2, 2, 0, 0, 1}
	wantWrapped := []bool{false, false, false, false, false, true, false, false}
	for i := range wantFrames {
		wrapped := AdvanceFrame(sprite)
		if sprite.Frame != wantFrames[i] || wrapped != wantWrapped[i] {
			t.Errorf("step %d: frame=%d wrapped=%v, want frame=%d wrapped=%v",
				i, sprite.Frame, wrapped, wantFrames[i], wantWrapped[i])
		}
		if sprite.Cooldown < 0 || sprite.Cooldown >= sprite.FramesPerAdvance {
			t.Errorf("step %d: cooldown %d out of range", i, sprite.Cooldown)
		}
	}
}

// TestAdvanceFrameSingleFrame 单帧动画每次换帧都回绕到 0
func TestAdvanceFrameSingleFrame(t *testing.T) {
	sprite := &components.SpriteComponent{FrameCount: 1}
	for i := 0; i < 3; i++ {
		if !AdvanceFrame(sprite) || sprite.Frame != 0 {
			t.Errorf("step %d: frame=%d, want 0 and wrapped", i, sprite.Frame)
		}
	}
}

// TestAnimateDrawsAdvancedFrame 先换帧再绘制，源区域按帧宽计算
func TestAnimateDrawsAdvancedFrame(t *testing.T) {
	w := newTestWorld(1)
	id := w.em.CreateEntity()
	w.em.AddComponent(id, &components.SpriteComponent{
		X: 100, Y: 200, SheetRow: 120, FrameCount: 3, FrameWidth: 120, FrameHeight: 30,
	})

	if w.anim.Animate(id) {
		t.Error("first Animate should not wrap")
	}

	sprites := w.surface.Sprites()
	if len(sprites) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(sprites))
	}
	call := sprites[0]
	if call.Sheet != testSheet {
		t.Errorf("sheet = %v, want %v", call.Sheet, testSheet)
	}
	if want := (game.Rect{X: 40, Y: 120, W: 40, H: 30}); call.Src != want {
		t.Errorf("src = %+v, want %+v", call.Src, want)
	}
	if want := (game.Rect{X: 100, Y: 200, W: 40, H: 30}); call.Dst != want {
		t.Errorf("dst = %+v, want %+v", call.Dst, want)
	}
}

// TestAnimateWithoutSprite 没有精灵组件的实体不绘制
func TestAnimateWithoutSprite(t *testing.T) {
	w := newTestWorld(1)
	id := w.em.CreateEntity()
	if w.anim.Animate(id) {
		t.Error("Animate without sprite should return false")
	}
	if len(w.surface.Calls) != 0 {
		t.Errorf("unexpected draw calls %v", w.surface.Calls)
	}
}

// TestSourceRect 测试各种精灵的源区域
func TestSourceRect(t *testing.T) {
	tests := []struct {
		name   string
		sprite components.SpriteComponent
		want   game.Rect
	}{
		{
			name:   "行走的狗第4帧",
			sprite: components.SpriteComponent{SheetRow: 0, FrameCount: 5, FrameWidth: 300, FrameHeight: 45, Frame: 4},
			want:   game.Rect{X: 240, Y: 0, W: 60, H: 45},
		},
		{
			name:   "坠落鸭子",
			sprite: components.SpriteComponent{SheetRow: 230, FrameCount: 1, FrameWidth: 35, FrameHeight: 45},
			want:   game.Rect{X: 0, Y: 230, W: 35, H: 45},
		},
		{
			name:   "全部打中",
			sprite: components.SpriteComponent{SheetRow: 375, FrameCount: 1, FrameWidth: 60, FrameHeight: 50},
			want:   game.Rect{X: 0, Y: 375, W: 60, H: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SourceRect(&tt.sprite); got != tt.want {
				t.Errorf("SourceRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestRenderClear 清屏使用配置中的背景色和画面尺寸
func TestRenderClear(t *testing.T) {
	w := newTestWorld(1)
	w.render.Clear()

	if len(w.surface.Calls) != 1 || !w.surface.Calls[0].Clear {
		t.Fatalf("calls = %+v, want one clear", w.surface.Calls)
	}
	call := w.surface.Calls[0]
	if want := (game.Rect{W: 500, H: 500}); call.Dst != want {
		t.Errorf("clear rect = %+v, want %+v", call.Dst, want)
	}
	if call.Color.R != 55 || call.Color.G != 181 || call.Color.B != 255 || call.Color.A != 255 {
		t.Errorf("clear color = %+v, want rgb(55,181,255)", call.Color)
	}
}
