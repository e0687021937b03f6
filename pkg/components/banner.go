package components

// BannerVariant 回合结算动画的种类
type BannerVariant int

const (
	BannerMiss    BannerVariant = iota // 一只没打中，狗嘲笑
	BannerOneKill                      // 打中一只
	BannerPerfect                      // 两只都打中
)

// String 返回结算种类名称
func (v BannerVariant) String() string {
	switch v {
	case BannerMiss:
		return "miss"
	case BannerOneKill:
		return "one_kill"
	case BannerPerfect:
		return "perfect"
	default:
		return "unknown"
	}
}

// BannerComponent 回合结算动画
// 狗从草丛中升起（RiseSpeed 为负值），Y 不大于 StopY 时动画结束
type BannerComponent struct {
	Variant    BannerVariant
	RiseSpeed  float64 // 每 tick 的 Y 位移
	StopY      float64 // 停止位置
	IsFinished bool    // 是否已升到停止位置
}
