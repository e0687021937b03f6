package game

// ScoreKeeper 记录击杀数、关卡、剩余子弹和鸭子速度
//
// 关卡规则：每次成功击中后，若总击杀数是 killsPerLevel 的正整数倍，
// 关卡和鸭子水平速度各加一。速度只影响之后生成的鸭子。
type ScoreKeeper struct {
	totalKills     int
	killsThisRound int
	level          int
	shotsRemaining int
	duckSpeed      int

	shotsPerRound int
	killsPerLevel int
}

// NewScoreKeeper 创建计分器
//
// 参数：
//   - shotsPerRound: 每回合子弹数
//   - killsPerLevel: 每升一级需要的击杀数
//   - initialSpeed: 第一关鸭子的水平速度
func NewScoreKeeper(shotsPerRound, killsPerLevel, initialSpeed int) *ScoreKeeper {
	Invariant(shotsPerRound > 0, "shotsPerRound must be positive, got %d", shotsPerRound)
	Invariant(killsPerLevel > 0, "killsPerLevel must be positive, got %d", killsPerLevel)

	return &ScoreKeeper{
		level:          1,
		shotsRemaining: shotsPerRound,
		duckSpeed:      initialSpeed,
		shotsPerRound:  shotsPerRound,
		killsPerLevel:  killsPerLevel,
	}
}

// UseShot 消耗一发子弹，没有子弹时返回 false
func (sk *ScoreKeeper) UseShot() bool {
	if sk.shotsRemaining <= 0 {
		return false
	}
	sk.shotsRemaining--
	Invariant(sk.shotsRemaining >= 0, "negative shot count %d", sk.shotsRemaining)
	return true
}

// RecordKill 记录一次击中，返回是否升级
func (sk *ScoreKeeper) RecordKill() bool {
	sk.killsThisRound++
	sk.totalKills++

	if sk.totalKills%sk.killsPerLevel == 0 {
		sk.level++
		sk.duckSpeed++
		return true
	}
	return false
}

// ResetRound 开始新回合：清零本回合击杀，补满子弹
func (sk *ScoreKeeper) ResetRound() {
	sk.killsThisRound = 0
	sk.shotsRemaining = sk.shotsPerRound
}

// Snapshot 返回统计信息快照
func (sk *ScoreKeeper) Snapshot() Stats {
	return Stats{
		KillsTotal:     sk.totalKills,
		Level:          sk.level,
		ShotsRemaining: sk.shotsRemaining,
	}
}

// TotalKills 返回总击杀数
func (sk *ScoreKeeper) TotalKills() int { return sk.totalKills }

// KillsThisRound 返回本回合击杀数
func (sk *ScoreKeeper) KillsThisRound() int { return sk.killsThisRound }

// Level 返回当前关卡
func (sk *ScoreKeeper) Level() int { return sk.level }

// ShotsRemaining 返回剩余子弹
func (sk *ScoreKeeper) ShotsRemaining() int { return sk.shotsRemaining }

// DuckSpeed 返回新生成鸭子的水平速度
func (sk *ScoreKeeper) DuckSpeed() int { return sk.duckSpeed }
