package systems

import (
	"testing"

	"github.com/decker502/duckhunt/pkg/components"
	"github.com/decker502/duckhunt/pkg/ecs"
	"github.com/decker502/duckhunt/pkg/entities"
)

// TestCollisionTestHit 命中框只有一帧宽：(120,110) 命中，(145,110) 不命中
func TestCollisionTestHit(t *testing.T) {
	w := newTestWorld(1)
	cs := NewCollisionSystem(w.em, w.state)
	id := entities.NewDuckEntity(w.em, w.state.Config, 3, w.state.Rand)
	w.placeDuck(id, 100, 100, 3, 0)
	ducks := []ecs.EntityID{id}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"帧内", 120, 110, true},
		{"左上角", 100, 100, true},
		{"超出单帧宽度", 145, 110, false},
		{"右边界", 140, 110, false},
		{"下边界", 120, 130, false},
		{"左侧", 99, 110, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, hit := cs.TestHit(tt.x, tt.y, ducks)
			if hit != tt.want {
				t.Errorf("TestHit(%v, %v) hit = %v, want %v", tt.x, tt.y, hit, tt.want)
			}
			if hit && index != 0 {
				t.Errorf("index = %d, want 0", index)
			}
		})
	}
}

// TestCollisionShootOneDuckPerShot 重叠的鸭子只有先生成的被击中
func TestCollisionShootOneDuckPerShot(t *testing.T) {
	w := newTestWorld(1)
	cs := NewCollisionSystem(w.em, w.state)
	first := entities.NewDuckEntity(w.em, w.state.Config, 3, w.state.Rand)
	second := entities.NewDuckEntity(w.em, w.state.Config, 3, w.state.Rand)
	w.placeDuck(first, 100, 100, 3, 0)
	w.placeDuck(second, 110, 105, 3, 0)

	hitID, hit := cs.Shoot(120, 110, []ecs.EntityID{first, second})
	if !hit || hitID != first {
		t.Fatalf("Shoot() = %d, %v, want %d, true", hitID, hit, first)
	}
	w.em.RemoveMarkedEntities()

	if w.em.IsAlive(first) {
		t.Error("hit duck should be removed")
	}
	if !w.em.IsAlive(second) {
		t.Error("only one duck may be hit per shot")
	}
	if w.state.Score.TotalKills() != 1 || w.state.Score.KillsThisRound() != 1 {
		t.Errorf("kills = %d/%d, want 1/1", w.state.Score.TotalKills(), w.state.Score.KillsThisRound())
	}

	// 坠落鸭子出现在被击中鸭子的位置
	hunted := ecs.GetEntitiesWith1[*components.LifetimeComponent](w.em)
	if len(hunted) != 1 {
		t.Fatalf("hunted ducks = %d, want 1", len(hunted))
	}
	if s := w.sprite(hunted[0]); s.X != 100 || s.Y != 100 {
		t.Errorf("hunted duck at (%v, %v), want (100, 100)", s.X, s.Y)
	}
}

// TestCollisionShootMiss 未命中不改变任何状态
func TestCollisionShootMiss(t *testing.T) {
	w := newTestWorld(1)
	cs := NewCollisionSystem(w.em, w.state)
	id := entities.NewDuckEntity(w.em, w.state.Config, 3, w.state.Rand)
	w.placeDuck(id, 100, 100, 3, 0)
	count := w.em.EntityCount()

	if _, hit := cs.Shoot(300, 300, []ecs.EntityID{id}); hit {
		t.Error("Shoot should miss")
	}
	if w.em.EntityCount() != count {
		t.Errorf("entity count %d -> %d", count, w.em.EntityCount())
	}
	if w.state.Score.TotalKills() != 0 {
		t.Error("miss must not score")
	}
}

// TestCollisionLevelUp 每 10 次击中升一级，速度只影响之后生成的鸭子
func TestCollisionLevelUp(t *testing.T) {
	w := newTestWorld(1)
	cs := NewCollisionSystem(w.em, w.state)

	var oldDuck ecs.EntityID
	for kill := 1; kill <= 20; kill++ {
		id := entities.NewDuckEntity(w.em, w.state.Config, w.state.Score.DuckSpeed(), w.state.Rand)
		if kill == 10 {
			oldDuck = entities.NewDuckEntity(w.em, w.state.Config, w.state.Score.DuckSpeed(), w.state.Rand)
			w.sprite(oldDuck).X, w.sprite(oldDuck).Y = 400, 400
		}
		w.placeDuck(id, 0, 0, 3, 0)
		if _, hit := cs.Shoot(1, 1, []ecs.EntityID{id}); !hit {
			t.Fatalf("kill %d: shot missed", kill)
		}
		w.em.RemoveMarkedEntities()

		wantLevel := 1 + kill/10
		if w.state.Score.Level() != wantLevel || w.state.Score.DuckSpeed() != 2+wantLevel {
			t.Errorf("after %d kills: level %d speed %d, want %d %d",
				kill, w.state.Score.Level(), w.state.Score.DuckSpeed(), wantLevel, 2+wantLevel)
		}
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, oldDuck)
	if vel.DX != 3 {
		t.Errorf("existing duck speed changed to %v", vel.DX)
	}
}
