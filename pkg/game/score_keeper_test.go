package game

import "testing"

// TestNewScoreKeeper 测试初始值
func TestNewScoreKeeper(t *testing.T) {
	sk := NewScoreKeeper(4, 10, 3)

	want := Stats{KillsTotal: 0, Level: 1, ShotsRemaining: 4}
	if got := sk.Snapshot(); got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
	if sk.DuckSpeed() != 3 {
		t.Errorf("DuckSpeed() = %d, want 3", sk.DuckSpeed())
	}
	if sk.KillsThisRound() != 0 {
		t.Errorf("KillsThisRound() = %d, want 0", sk.KillsThisRound())
	}
}

// TestUseShot 子弹用完后不再扣减
func TestUseShot(t *testing.T) {
	sk := NewScoreKeeper(4, 10, 3)

	for i := 0; i < 4; i++ {
		if !sk.UseShot() {
			t.Fatalf("shot %d rejected", i+1)
		}
		if sk.ShotsRemaining() != 3-i {
			t.Errorf("after shot %d: ShotsRemaining = %d, want %d", i+1, sk.ShotsRemaining(), 3-i)
		}
	}
	if sk.UseShot() {
		t.Error("UseShot with no shots left should return false")
	}
	if sk.ShotsRemaining() != 0 {
		t.Errorf("ShotsRemaining = %d, want 0", sk.ShotsRemaining())
	}
}

// TestRecordKillLevelUp 每 10 次击杀升一级，且只升一次
func TestRecordKillLevelUp(t *testing.T) {
	sk := NewScoreKeeper(4, 10, 3)

	levelUps := 0
	for kill := 1; kill <= 25; kill++ {
		if sk.RecordKill() {
			levelUps++
			if kill%10 != 0 {
				t.Errorf("level up at kill %d", kill)
			}
		}
	}

	if levelUps != 2 {
		t.Errorf("levelUps = %d, want 2", levelUps)
	}
	if sk.Level() != 3 {
		t.Errorf("Level() = %d, want 3", sk.Level())
	}
	if sk.DuckSpeed() != 5 {
		t.Errorf("DuckSpeed() = %d, want 5", sk.DuckSpeed())
	}
	if sk.TotalKills() != 25 {
		t.Errorf("TotalKills() = %d, want 25", sk.TotalKills())
	}
}

// TestResetRound 新回合清零本回合击杀、补满子弹，保留总击杀和关卡
func TestResetRound(t *testing.T) {
	sk := NewScoreKeeper(4, 10, 3)
	sk.UseShot()
	sk.UseShot()
	sk.RecordKill()
	sk.RecordKill()

	sk.ResetRound()

	if sk.KillsThisRound() != 0 {
		t.Errorf("KillsThisRound() = %d, want 0", sk.KillsThisRound())
	}
	if sk.ShotsRemaining() != 4 {
		t.Errorf("ShotsRemaining() = %d, want 4", sk.ShotsRemaining())
	}
	if sk.TotalKills() != 2 {
		t.Errorf("TotalKills() = %d, want 2", sk.TotalKills())
	}
}

// TestSnapshotIsValue 快照不随后续修改变化
func TestSnapshotIsValue(t *testing.T) {
	sk := NewScoreKeeper(4, 10, 3)
	snap := sk.Snapshot()
	sk.UseShot()
	sk.RecordKill()

	if snap.ShotsRemaining != 4 || snap.KillsTotal != 0 {
		t.Errorf("snapshot changed: %+v", snap)
	}
}

// TestNewScoreKeeperInvalid 非法参数触发不变量检查
func TestNewScoreKeeperInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewScoreKeeper(0, 10, 3) should panic")
		}
	}()
	NewScoreKeeper(0, 10, 3)
}
