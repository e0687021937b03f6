package game

import "image/color"

// DrawCall 一次绘制指令的记录
type DrawCall struct {
	Clear bool
	Sheet SheetHandle
	Src   Rect
	Dst   Rect
	Color color.RGBA
}

// RecordingSurface 记录所有绘制指令的 Surface，用于测试和无窗口验证
type RecordingSurface struct {
	Calls []DrawCall
}

// DrawSprite 记录精灵绘制
func (s *RecordingSurface) DrawSprite(sheet SheetHandle, src, dst Rect) {
	s.Calls = append(s.Calls, DrawCall{Sheet: sheet, Src: src, Dst: dst})
}

// ClearRect 记录清屏；清屏后之前的记录不再可见，因此直接丢弃
func (s *RecordingSurface) ClearRect(r Rect, c color.RGBA) {
	s.Calls = append(s.Calls[:0], DrawCall{Clear: true, Dst: r, Color: c})
}

// Sprites 返回最近一次清屏后的所有精灵绘制
func (s *RecordingSurface) Sprites() []DrawCall {
	result := make([]DrawCall, 0, len(s.Calls))
	for _, call := range s.Calls {
		if !call.Clear {
			result = append(result, call)
		}
	}
	return result
}

// RecordingCueSink 记录所有音效请求
type RecordingCueSink struct {
	Cues []string
}

// PlaySound 记录音效 ID
func (r *RecordingCueSink) PlaySound(soundID string) bool {
	r.Cues = append(r.Cues, soundID)
	return true
}

// Count 返回某个音效被请求的次数
func (r *RecordingCueSink) Count(soundID string) int {
	n := 0
	for _, cue := range r.Cues {
		if cue == soundID {
			n++
		}
	}
	return n
}

// RecordingStatsSink 保存收到的所有统计快照
type RecordingStatsSink struct {
	History []Stats
}

// UpdateStats 记录快照
func (r *RecordingStatsSink) UpdateStats(stats Stats) {
	r.History = append(r.History, stats)
}

// Last 返回最近一次快照
func (r *RecordingStatsSink) Last() (Stats, bool) {
	if len(r.History) == 0 {
		return Stats{}, false
	}
	return r.History[len(r.History)-1], true
}
