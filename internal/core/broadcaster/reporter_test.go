package broadcaster

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// recordingReporter 记录上报调用
type recordingReporter struct {
	mu         sync.Mutex
	subscribes map[pkgif.ChannelKind]int
	disposes   map[pkgif.ChannelKind]int
	publishes  map[pkgif.ChannelKind]int
	delivered  map[pkgif.ChannelKind]int
	failures   map[pkgif.ChannelKind]int
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{
		subscribes: make(map[pkgif.ChannelKind]int),
		disposes:   make(map[pkgif.ChannelKind]int),
		publishes:  make(map[pkgif.ChannelKind]int),
		delivered:  make(map[pkgif.ChannelKind]int),
		failures:   make(map[pkgif.ChannelKind]int),
	}
}

func (r *recordingReporter) LogSubscribe(kind pkgif.ChannelKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribes[kind]++
}

func (r *recordingReporter) LogDispose(kind pkgif.ChannelKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disposes[kind]++
}

func (r *recordingReporter) LogPublish(kind pkgif.ChannelKind, delivered int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.publishes[kind]++
	r.delivered[kind] += delivered
}

func (r *recordingReporter) LogSubscriberFailure(kind pkgif.ChannelKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[kind]++
}

// TestReporter 测试指标上报
func TestReporter(t *testing.T) {
	r := newRecordingReporter()
	b, _ := newQuiet(t, WithReporter(r))

	sub, _ := b.Subscribe(stringEventA, func(any) {})
	b.Subscribe(stringEventA, func(any) { panic("boom") })
	b.SubscribeOnce(new(broadcasterEventA), func(any) {})

	b.Publish(stringEventA, nil)
	b.PublishMessage(broadcasterEventA{})

	sub.Dispose()
	sub.Dispose()

	assert.Equal(t, 2, r.subscribes[pkgif.ChannelNamed])
	assert.Equal(t, 1, r.subscribes[pkgif.ChannelTyped])
	assert.Equal(t, 1, r.disposes[pkgif.ChannelNamed], "重复取消只上报一次")
	assert.Equal(t, 1, r.disposes[pkgif.ChannelTyped], "一次性订阅触发后自动取消")
	assert.Equal(t, 1, r.publishes[pkgif.ChannelNamed])
	assert.Equal(t, 1, r.delivered[pkgif.ChannelNamed])
	assert.Equal(t, 1, r.delivered[pkgif.ChannelTyped])
	assert.Equal(t, 1, r.failures[pkgif.ChannelNamed])
}

// TestWithReporter_Nil 测试 nil 上报被忽略
func TestWithReporter_Nil(t *testing.T) {
	b := New(WithReporter(nil))
	assert.NotPanics(t, func() {
		b.Subscribe(stringEventA, func(any) {})
		b.Publish(stringEventA, nil)
	})
}
