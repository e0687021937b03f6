package game

// CueSink 音效播放接口
// 播放是“发出即忘”的：调用方不关心播放是否完成
type CueSink interface {
	PlaySound(soundID string) bool
}
