package game

import (
	"sort"
	"time"
)

// deferredAction 一个延迟执行的动作
type deferredAction struct {
	name string
	due  time.Time
	seq  int
	fn   func()
}

// Scheduler 基于 Clock 的延迟动作队列
//
// 动作不会在独立的 goroutine 中执行，而是在下一次 RunDue 调用时
// （即下一个 tick 开始时）同步执行，因此不会与 tick 内的状态修改并发。
type Scheduler struct {
	clock   Clock
	pending []deferredAction
	nextSeq int
}

// NewScheduler 创建延迟动作队列
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After 安排 fn 在 d 之后执行
func (s *Scheduler) After(name string, d time.Duration, fn func()) {
	s.pending = append(s.pending, deferredAction{
		name: name,
		due:  s.clock.Now().Add(d),
		seq:  s.nextSeq,
		fn:   fn,
	})
	s.nextSeq++
}

// RunDue 按到期时间顺序执行所有已到期的动作，返回执行的数量
func (s *Scheduler) RunDue() int {
	if len(s.pending) == 0 {
		return 0
	}

	now := s.clock.Now()
	due := make([]deferredAction, 0, len(s.pending))
	remaining := s.pending[:0]
	for _, action := range s.pending {
		if !now.Before(action.due) {
			due = append(due, action)
		} else {
			remaining = append(remaining, action)
		}
	}
	s.pending = remaining

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, action := range due {
		action.fn()
	}
	return len(due)
}

// Pending 返回尚未执行的动作数量
func (s *Scheduler) Pending() int {
	return len(s.pending)
}
