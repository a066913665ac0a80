package broadcaster

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
	"github.com/zapdaz/go-zapdaz/pkg/lib/log"
)

var logger = log.Logger("core/broadcaster")

// ============================================================================
// EventBroadcaster 实现
// ============================================================================

// EventBroadcaster 进程内事件广播器
type EventBroadcaster struct {
	mu sync.RWMutex

	// eventLookup 命名通道 -> 回调列表（注册顺序即分发顺序）
	//
	// 键在首次订阅时创建，所有订阅取消后保留空列表。
	eventLookup map[string][]*entry

	// messageHandlers 消息类型回调列表（注册顺序即分发顺序）
	messageHandlers []*entry

	onError      ErrorHandler
	reporter     pkgif.BroadcastReporter
	log          logSink
	captureStack bool
}

// entry 注册表条目
//
// Subscription 持有条目指针，删除时按指针身份查找。
type entry struct {
	id      string
	channel pkgif.Channel
	handler pkgif.Handler
	once    bool
}

func (e *entry) registration() pkgif.Registration {
	return pkgif.Registration{
		ID:      e.id,
		Channel: e.channel,
		Handler: e.handler,
		Once:    e.once,
	}
}

// New 创建事件广播器
func New(opts ...Option) *EventBroadcaster {
	b := &EventBroadcaster{
		eventLookup:  make(map[string][]*entry),
		reporter:     nopReporter{},
		log:          logger,
		captureStack: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.onError == nil {
		b.onError = b.logFailure
	}
	return b
}

// ============================================================================
// 订阅
// ============================================================================

// Subscribe 订阅通道
//
// channel 为 string 时订阅命名通道；为 Channel、reflect.Type 或
// 指向消息类型的指针时订阅消息类型。其他参数返回 *InvalidChannelError。
func (b *EventBroadcaster) Subscribe(channel any, cb pkgif.Handler) (pkgif.Subscription, error) {
	ch, err := resolveChannel(channel)
	if err != nil {
		return nil, err
	}

	sub := b.newSubscription(ch, false)
	sub.entry.handler = cb
	b.register(sub.entry)
	return sub, nil
}

// SubscribeOnce 订阅通道，回调最多触发一次
//
// 注册表中记录的是包装函数：被调用时先取消自身订阅，再调用 cb，
// 因此 cb 内同步发布同一事件不会再次触发自己。
func (b *EventBroadcaster) SubscribeOnce(channel any, cb pkgif.Handler) (pkgif.Subscription, error) {
	ch, err := resolveChannel(channel)
	if err != nil {
		return nil, err
	}

	sub := b.newSubscription(ch, true)
	sub.entry.handler = func(data any) {
		// 已被取消（或被并发的发布抢先触发）时不再调用
		if !sub.dispose() {
			return
		}
		cb(data)
	}
	b.register(sub.entry)
	return sub, nil
}

func (b *EventBroadcaster) newSubscription(ch pkgif.Channel, once bool) *Subscription {
	return &Subscription{
		bus: b,
		entry: &entry{
			id:      uuid.NewString(),
			channel: ch,
			once:    once,
		},
	}
}

// register 追加条目到对应注册表
func (b *EventBroadcaster) register(e *entry) {
	b.mu.Lock()
	switch e.channel.Kind() {
	case pkgif.ChannelNamed:
		name := e.channel.Name()
		b.eventLookup[name] = append(b.eventLookup[name], e)
	case pkgif.ChannelTyped:
		b.messageHandlers = append(b.messageHandlers, e)
	}
	b.mu.Unlock()

	b.reporter.LogSubscribe(e.channel.Kind())
	b.log.Debug("订阅", "channel", e.channel, "subscription", e.id, "once", e.once)
}

// remove 按指针身份删除条目，保持其余条目的相对顺序
func (b *EventBroadcaster) remove(e *entry) {
	var removed bool

	b.mu.Lock()
	switch e.channel.Kind() {
	case pkgif.ChannelNamed:
		name := e.channel.Name()
		b.eventLookup[name], removed = without(b.eventLookup[name], e)
	case pkgif.ChannelTyped:
		b.messageHandlers, removed = without(b.messageHandlers, e)
	}
	b.mu.Unlock()

	if removed {
		b.reporter.LogDispose(e.channel.Kind())
		b.log.Debug("取消订阅", "channel", e.channel, "subscription", e.id)
	}
}

// without 从列表中移除 e
//
// 发布方持有的是快照副本，因此可以原地拼接。
func without(entries []*entry, e *entry) ([]*entry, bool) {
	i := slices.Index(entries, e)
	if i < 0 {
		return entries, false
	}
	return slices.Delete(entries, i, i+1), true
}

// ============================================================================
// 发布
// ============================================================================

// Publish 向命名通道发布数据
//
// 通道不存在或没有订阅者时不做任何事。
func (b *EventBroadcaster) Publish(channel string, data any) {
	b.mu.RLock()
	snapshot := slices.Clone(b.eventLookup[channel])
	b.mu.RUnlock()

	delivered := b.dispatch(snapshot, data)
	b.reporter.LogPublish(pkgif.ChannelNamed, delivered)
}

// PublishMessage 按消息实例的运行时类型发布
//
// msg 为 nil 或不是可用的消息实例时返回 *InvalidChannelError；
// 订阅者的失败不会通过返回值体现。
func (b *EventBroadcaster) PublishMessage(msg any) error {
	typ, err := resolveInstance(msg)
	if err != nil {
		return err
	}

	b.mu.RLock()
	var snapshot []*entry
	for _, e := range b.messageHandlers {
		if matches(e.channel.Type(), typ) {
			snapshot = append(snapshot, e)
		}
	}
	b.mu.RUnlock()

	delivered := b.dispatch(snapshot, msg)
	b.reporter.LogPublish(pkgif.ChannelTyped, delivered)
	return nil
}

// ============================================================================
// 只读诊断
// ============================================================================

// EventLookup 返回命名通道注册表的快照
func (b *EventBroadcaster) EventLookup() map[string][]pkgif.Registration {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string][]pkgif.Registration, len(b.eventLookup))
	for name, entries := range b.eventLookup {
		regs := make([]pkgif.Registration, 0, len(entries))
		for _, e := range entries {
			regs = append(regs, e.registration())
		}
		out[name] = regs
	}
	return out
}

// MessageHandlers 返回消息类型注册表的快照
func (b *EventBroadcaster) MessageHandlers() []pkgif.Registration {
	b.mu.RLock()
	defer b.mu.RUnlock()

	regs := make([]pkgif.Registration, 0, len(b.messageHandlers))
	for _, e := range b.messageHandlers {
		regs = append(regs, e.registration())
	}
	return regs
}

// SubscriberCount 返回通道上的订阅数
//
// 类型通道只统计为该类型本身注册的订阅，不展开接口匹配。
// 无效通道返回 0。
func (b *EventBroadcaster) SubscriberCount(channel any) int {
	ch, err := resolveChannel(channel)
	if err != nil {
		return 0
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch.Kind() == pkgif.ChannelNamed {
		return len(b.eventLookup[ch.Name()])
	}

	n := 0
	for _, e := range b.messageHandlers {
		if e.channel.Type() == ch.Type() {
			n++
		}
	}
	return n
}
