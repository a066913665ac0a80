package broadcaster

import (
	"runtime/debug"
)

// dispatch 依次调用快照中的回调，返回成功执行的数量
func (b *EventBroadcaster) dispatch(entries []*entry, data any) int {
	delivered := 0
	for _, e := range entries {
		if b.invoke(e, data) {
			delivered++
		}
	}
	return delivered
}

// invoke 调用单个回调，panic 被隔离为 SubscriberExecutionError
func (b *EventBroadcaster) invoke(e *entry, data any) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err := &SubscriberExecutionError{
				Channel:        e.channel,
				SubscriptionID: e.id,
				Value:          r,
			}
			if b.captureStack {
				err.Stack = debug.Stack()
			}
			b.reportFailure(err)
		}
	}()

	e.handler(data)
	return true
}

// reportFailure 上报订阅者失败
//
// 错误处理器自身的 panic 也会被吞掉并记录，分发继续进行。
func (b *EventBroadcaster) reportFailure(err *SubscriberExecutionError) {
	b.reporter.LogSubscriberFailure(err.Channel.Kind())

	defer func() {
		if r := recover(); r != nil {
			b.log.Error("错误处理器 panic", "channel", err.Channel, "subscription", err.SubscriptionID, "panic", r)
		}
	}()
	b.onError(err)
}

// logFailure 默认错误处理器：写错误日志
func (b *EventBroadcaster) logFailure(err *SubscriberExecutionError) {
	args := []any{
		"channel", err.Channel,
		"subscription", err.SubscriptionID,
		"err", err.Value,
	}
	if len(err.Stack) > 0 {
		args = append(args, "stack", string(err.Stack))
	}
	b.log.Error("订阅者执行失败", args...)
}
