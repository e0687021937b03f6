package game

import (
	"errors"
	"fmt"
)

// ErrAssetNotReady 资源尚未加载完成就请求绘制或播放
// 只在启动阶段返回，游戏循环开始后不应出现
var ErrAssetNotReady = errors.New("asset not ready")

// Invariant 检查内部不变量，违反时 panic
// 例如子弹数为负、实体索引越界，这些只可能是编程错误
func Invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("invariant violation: "+format, args...))
	}
}
