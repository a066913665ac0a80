package broadcaster

import (
	"sync/atomic"

	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// ============================================================================
// Subscription 实现
// ============================================================================

// Subscription 订阅句柄
//
// 只有两个状态：Active -> Disposed，不可重新激活。
type Subscription struct {
	bus      *EventBroadcaster
	entry    *entry
	disposed atomic.Bool
}

// ID 返回订阅唯一标识
func (s *Subscription) ID() string {
	return s.entry.id
}

// Channel 返回订阅的通道
func (s *Subscription) Channel() pkgif.Channel {
	return s.entry.channel
}

// Disposed 是否已取消
func (s *Subscription) Disposed() bool {
	return s.disposed.Load()
}

// Dispose 取消订阅
//
// Dispose 是并发安全的，可以多次调用，只有第一次生效；
// 删除按条目身份进行，不会误删其他订阅。
func (s *Subscription) Dispose() {
	s.dispose()
}

// dispose 取消订阅，返回本次调用是否生效
func (s *Subscription) dispose() bool {
	if !s.disposed.CompareAndSwap(false, true) {
		return false
	}
	s.bus.remove(s.entry)
	return true
}
