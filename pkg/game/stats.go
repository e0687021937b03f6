package game

// Stats 统计信息快照，每个 tick 发送给 StatsSink 一次
type Stats struct {
	KillsTotal     int
	Level          int
	ShotsRemaining int
}

// StatsSink 统计信息显示接口（HUD、终端状态栏等）
type StatsSink interface {
	UpdateStats(stats Stats)
}
