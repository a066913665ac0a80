package metrics

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// RateMeter 测试
// ============================================================================

// TestRateMeter_Basic 测试基本速率计算
func TestRateMeter_Basic(t *testing.T) {
	mock := clock.NewMock()
	r := NewRateMeter(mock)

	r.Mark(60)
	assert.Equal(t, int64(60), r.Window())
	assert.InDelta(t, 1.0, r.Rate(), 0.0001)
}

// TestRateMeter_Slides 测试窗口滑动后旧桶被清空
func TestRateMeter_Slides(t *testing.T) {
	mock := clock.NewMock()
	r := NewRateMeter(mock)

	r.Mark(10)
	mock.Add(30 * time.Second)
	r.Mark(20)
	assert.Equal(t, int64(30), r.Window())

	// 第一个桶在 60 秒后滑出窗口
	mock.Add(30 * time.Second)
	assert.Equal(t, int64(20), r.Window())

	mock.Add(30 * time.Second)
	assert.Equal(t, int64(0), r.Window())
}

// TestRateMeter_LongIdle 测试长时间无数据后全部清空
func TestRateMeter_LongIdle(t *testing.T) {
	mock := clock.NewMock()
	r := NewRateMeter(mock)

	for i := 0; i < 10; i++ {
		r.Mark(1)
		mock.Add(time.Second)
	}
	assert.Equal(t, int64(10), r.Window())

	mock.Add(5 * time.Minute)
	assert.Equal(t, int64(0), r.Window())
	assert.Zero(t, r.Rate())
}

// TestRateMeter_SubSecond 测试不足 1 秒不移动桶
func TestRateMeter_SubSecond(t *testing.T) {
	mock := clock.NewMock()
	r := NewRateMeter(mock)

	r.Mark(1)
	mock.Add(500 * time.Millisecond)
	r.Mark(1)
	mock.Add(400 * time.Millisecond)
	r.Mark(1)

	assert.Equal(t, int64(3), r.buckets[0])
	assert.Equal(t, 0, r.lastIdx)
}

// TestRateMeter_Reset 测试重置
func TestRateMeter_Reset(t *testing.T) {
	mock := clock.NewMock()
	r := NewRateMeter(mock)

	r.Mark(100)
	r.Reset()
	assert.Equal(t, int64(0), r.Window())
}

// TestRateMeter_NilClock 测试 nil 时钟回退到系统时钟
func TestRateMeter_NilClock(t *testing.T) {
	r := NewRateMeter(nil)
	r.Mark(3)
	assert.Equal(t, int64(3), r.Window())
}
