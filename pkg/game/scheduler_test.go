package game

import (
	"strings"
	"testing"
	"time"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestMockTimeProvider 测试可控时钟
func TestMockTimeProvider(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	if !clock.Now().Equal(testEpoch) {
		t.Errorf("Now() = %v, want %v", clock.Now(), testEpoch)
	}
	clock.Advance(1500 * time.Millisecond)
	if got := clock.Now().Sub(testEpoch); got != 1500*time.Millisecond {
		t.Errorf("elapsed = %v, want 1.5s", got)
	}
}

// TestSchedulerRunsWhenDue 动作在到期前不执行，到期后只执行一次
func TestSchedulerRunsWhenDue(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	s := NewScheduler(clock)

	runs := 0
	s.After("cooldown", time.Second, func() { runs++ })

	clock.Advance(999 * time.Millisecond)
	if n := s.RunDue(); n != 0 || runs != 0 {
		t.Fatalf("ran %d actions before due", n)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}

	clock.Advance(time.Millisecond)
	if n := s.RunDue(); n != 1 || runs != 1 {
		t.Fatalf("RunDue() = %d, runs = %d, want 1, 1", n, runs)
	}

	clock.Advance(time.Hour)
	if n := s.RunDue(); n != 0 || runs != 1 {
		t.Errorf("action ran again: RunDue() = %d, runs = %d", n, runs)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

// TestSchedulerOrder 到期动作按到期时间、再按安排顺序执行
func TestSchedulerOrder(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	s := NewScheduler(clock)

	var order []string
	s.After("late", 2*time.Second, func() { order = append(order, "late") })
	s.After("early", time.Second, func() { order = append(order, "early") })
	s.After("early2", time.Second, func() { order = append(order, "early2") })

	clock.Advance(3 * time.Second)
	s.RunDue()

	if got := strings.Join(order, ","); got != "early,early2,late" {
		t.Errorf("order = %s, want early,early2,late", got)
	}
}

// TestSchedulerZeroDelay 零延迟的动作在下一次 RunDue 时执行
func TestSchedulerZeroDelay(t *testing.T) {
	s := NewScheduler(NewMockTimeProvider(testEpoch))
	ran := false
	s.After("now", 0, func() { ran = true })
	if ran {
		t.Fatal("After must not run the action synchronously")
	}
	s.RunDue()
	if !ran {
		t.Error("zero-delay action should run on the next RunDue")
	}
}

// TestNewGameStateDefaults nil 参数使用默认配置和系统时钟
func TestNewGameStateDefaults(t *testing.T) {
	state := NewGameState(nil, nil, 1)

	if state.Config == nil || state.Config.ShotsPerRound != 4 {
		t.Fatalf("default config not applied: %+v", state.Config)
	}
	if _, ok := state.Clock.(*TimeProvider); !ok {
		t.Errorf("Clock = %T, want *TimeProvider", state.Clock)
	}
	if state.Score.ShotsRemaining() != 4 || state.Score.DuckSpeed() != 3 {
		t.Errorf("score not built from config: %+v", state.Score.Snapshot())
	}
}

// TestNewGameStateSeed 相同种子产生相同随机序列
func TestNewGameStateSeed(t *testing.T) {
	a := NewGameState(nil, nil, 42)
	b := NewGameState(nil, nil, 42)
	for i := 0; i < 5; i++ {
		if x, y := a.Rand.Intn(1000), b.Rand.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

// TestRectContains 左闭右开
func TestRectContains(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 40, H: 30}
	tests := []struct {
		x, y float64
		want bool
	}{
		{100, 100, true},
		{139.9, 129.9, true},
		{140, 110, false},
		{120, 130, false},
		{99.9, 110, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
