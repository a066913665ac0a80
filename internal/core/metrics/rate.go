package metrics

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// ============================================================================
// RateMeter - 速率计算器
// ============================================================================

// rateWindow 滑动窗口的桶数，每个桶 1 秒
const rateWindow = 60

// RateMeter 速率计算器（基于滑动窗口）
//
// 使用 60 个 1 秒桶来计算最近 60 秒的平均速率。
type RateMeter struct {
	mu       sync.Mutex
	clock    clock.Clock
	buckets  [rateWindow]int64
	lastIdx  int
	lastTime time.Time
}

// NewRateMeter 创建速率计算器，clk 为 nil 时使用系统时钟
func NewRateMeter(clk clock.Clock) *RateMeter {
	if clk == nil {
		clk = clock.New()
	}
	return &RateMeter{
		clock:    clk,
		lastTime: clk.Now(),
	}
}

// Mark 记录 n 个事件到当前桶
func (r *RateMeter) Mark(n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.advance()
	r.buckets[r.lastIdx] += n
}

// Rate 返回最近 60 秒的平均速率（事件/秒）
func (r *RateMeter) Rate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.advance()
	return float64(r.sum()) / rateWindow
}

// Window 返回最近 60 秒内的事件总数
func (r *RateMeter) Window() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.advance()
	return r.sum()
}

// Reset 重置速率计算器
func (r *RateMeter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buckets = [rateWindow]int64{}
	r.lastIdx = 0
	r.lastTime = r.clock.Now()
}

// advance 按经过的整秒数移动桶，调用方持有锁
func (r *RateMeter) advance() {
	elapsed := r.clock.Since(r.lastTime)
	if elapsed < time.Second {
		return
	}

	seconds := int(elapsed / time.Second)
	if seconds >= rateWindow {
		// 超过 60 秒没有数据，清空所有桶
		r.buckets = [rateWindow]int64{}
		r.lastIdx = 0
	} else {
		for i := 0; i < seconds; i++ {
			r.lastIdx = (r.lastIdx + 1) % rateWindow
			r.buckets[r.lastIdx] = 0
		}
	}
	r.lastTime = r.lastTime.Add(time.Duration(seconds) * time.Second)
}

func (r *RateMeter) sum() int64 {
	var total int64
	for _, v := range r.buckets {
		total += v
	}
	return total
}
