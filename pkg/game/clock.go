package game

import (
	"sync"
	"time"
)

// Clock 提供当前时间
// 冷却等真实时间延迟通过 Clock 计算，测试时替换为 MockTimeProvider
type Clock interface {
	Now() time.Time
}

// TimeProvider 使用系统单调时钟
type TimeProvider struct{}

// NewTimeProvider 创建系统时钟
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now 返回当前时间
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider 可控的时钟，用于测试和无窗口验证工具
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider 以指定起始时间创建可控时钟
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now 返回当前模拟时间
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance 将模拟时间前进 d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
