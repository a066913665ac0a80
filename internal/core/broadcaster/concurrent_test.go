package broadcaster

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// ============================================================================
// 并发测试
// ============================================================================

// TestConcurrent_SubscribePublishDispose 测试并发订阅、发布、取消
func TestConcurrent_SubscribePublishDispose(t *testing.T) {
	b := New()
	var received atomic.Int64

	numWorkers := 10
	iterations := 100

	var wg sync.WaitGroup
	wg.Add(numWorkers * 2)

	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				sub, _ := b.Subscribe(stringEventA, func(any) { received.Add(1) })
				typed, _ := b.Subscribe(new(broadcasterEventA), func(any) { received.Add(1) })
				sub.Dispose()
				typed.Dispose()
			}
		}()

		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				b.Publish(stringEventA, j)
				_ = b.PublishMessage(broadcasterEventA{})
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 0, b.SubscriberCount(stringEventA))
	assert.Equal(t, 0, b.SubscriberCount(new(broadcasterEventA)))
}

// TestConcurrent_OnceFiresOnce 测试并发发布时一次性订阅只触发一次
func TestConcurrent_OnceFiresOnce(t *testing.T) {
	b := New()
	var fired atomic.Int32

	b.SubscribeOnce(stringEventA, func(any) { fired.Add(1) })

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			b.Publish(stringEventA, nil)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), fired.Load())
	assert.Len(t, b.EventLookup()[stringEventA], 0)
}

// TestConcurrent_DisposeRace 测试并发重复取消只生效一次
func TestConcurrent_DisposeRace(t *testing.T) {
	r := newRecordingReporter()
	b := New(WithReporter(r))

	subs := make([]pkgif.Subscription, 50)
	for i := range subs {
		subs[i], _ = b.Subscribe(stringEventA, func(any) {})
	}

	var wg sync.WaitGroup
	for _, sub := range subs {
		sub := sub
		for k := 0; k < 4; k++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sub.Dispose()
			}()
		}
	}
	wg.Wait()

	assert.Len(t, b.EventLookup()[stringEventA], 0)
	assert.Equal(t, len(subs), r.disposes[pkgif.ChannelNamed])
}

// TestConcurrent_ReentrantPublish 测试回调内发布不会死锁
func TestConcurrent_ReentrantPublish(t *testing.T) {
	b := New()
	depth := 0

	b.Subscribe(stringEventA, func(any) {
		depth++
		b.Publish(stringEventB, nil)
	})
	b.Subscribe(stringEventB, func(any) {
		depth++
		b.Subscribe(stringEventB, func(any) {})
		_ = b.PublishMessage(broadcasterEventA{})
	})

	b.Publish(stringEventA, nil)
	assert.Equal(t, 2, depth)
}
