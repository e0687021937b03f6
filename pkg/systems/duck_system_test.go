package systems

import (
	"testing"

	"github.com/decker502/duckhunt/pkg/entities"
)

// TestDuckSystemDrawThenMove 鸭子先在原位置绘制，再移动
func TestDuckSystemDrawThenMove(t *testing.T) {
	w := newTestWorld(1)
	ds := NewDuckSystem(w.em, w.anim, w.state.Config.Bounds)
	id := entities.NewDuckEntity(w.em, w.state.Config, 3, w.state.Rand)
	w.placeDuck(id, 100, 100, 3, 2)

	ds.Update()

	sprites := w.surface.Sprites()
	if len(sprites) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(sprites))
	}
	if sprites[0].Dst.X != 100 || sprites[0].Dst.Y != 100 {
		t.Errorf("drawn at (%v, %v), want (100, 100)", sprites[0].Dst.X, sprites[0].Dst.Y)
	}
	if s := w.sprite(id); s.X != 103 || s.Y != 102 {
		t.Errorf("moved to (%v, %v), want (103, 102)", s.X, s.Y)
	}
}

// TestDuckSystemOutOfBounds 出界的鸭子被删除且不计分
func TestDuckSystemOutOfBounds(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		dx, dy    float64
		wantAlive bool
	}{
		{"右侧出界", 499, 100, 3, 0, false},
		{"右侧边界上", 497, 100, 3, 0, true},
		{"上方出界", 100, -29, 3, -2, false},
		{"上方刚好可见", 100, -28, 3, -2, true},
		{"下方出界", 100, 499, 3, 2, false},
		{"下方边界上", 100, 498, 3, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(1)
			ds := NewDuckSystem(w.em, w.anim, w.state.Config.Bounds)
			id := entities.NewDuckEntity(w.em, w.state.Config, 3, w.state.Rand)
			w.placeDuck(id, tt.x, tt.y, tt.dx, tt.dy)
			before := w.state.Score.Snapshot()

			pruned := ds.Update()
			w.em.RemoveMarkedEntities()

			if alive := w.em.IsAlive(id); alive != tt.wantAlive {
				t.Errorf("alive = %v, want %v (pruned %d)", alive, tt.wantAlive, pruned)
			}
			if after := w.state.Score.Snapshot(); after != before {
				t.Errorf("score changed: %+v -> %+v", before, after)
			}
			if w.state.Score.KillsThisRound() != 0 {
				t.Error("pruning must not count as a kill")
			}
		})
	}
}

// TestDuckSystemLiveDucksOrder 存活鸭子按生成顺序返回，且不包含待删除的
func TestDuckSystemLiveDucksOrder(t *testing.T) {
	w := newTestWorld(1)
	ds := NewDuckSystem(w.em, w.anim, w.state.Config.Bounds)

	a := entities.NewDuckEntity(w.em, w.state.Config, 3, w.state.Rand)
	entities.NewHuntedDuckEntity(w.em, w.state.Config, 0, 0)
	b := entities.NewDuckEntity(w.em, w.state.Config, 3, w.state.Rand)
	c := entities.NewDuckEntity(w.em, w.state.Config, 3, w.state.Rand)

	live := ds.LiveDucks()
	if len(live) != 3 || live[0] != a || live[1] != b || live[2] != c {
		t.Fatalf("LiveDucks() = %v, want [%d %d %d]", live, a, b, c)
	}

	w.em.DestroyEntity(b)
	live = ds.LiveDucks()
	if len(live) != 2 || live[0] != a || live[1] != c {
		t.Errorf("LiveDucks() after destroy = %v, want [%d %d]", live, a, c)
	}
}
