package broadcaster

import (
	"log/slog"

	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// Option 广播器选项
type Option func(*EventBroadcaster)

// logSink 广播器使用的日志接口，*slog.Logger 和 *log.LazyLogger 均满足
type logSink interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

// WithErrorHandler 设置订阅者失败处理函数
//
// 默认写错误日志。处理函数在发布者的 goroutine 上同步调用。
func WithErrorHandler(h ErrorHandler) Option {
	return func(b *EventBroadcaster) {
		b.onError = h
	}
}

// WithReporter 设置指标上报
func WithReporter(r pkgif.BroadcastReporter) Option {
	return func(b *EventBroadcaster) {
		if r != nil {
			b.reporter = r
		}
	}
}

// WithLogger 设置日志
func WithLogger(l *slog.Logger) Option {
	return func(b *EventBroadcaster) {
		if l != nil {
			b.log = l
		}
	}
}

// WithStackCapture 设置是否在失败中记录调用栈
func WithStackCapture(enabled bool) Option {
	return func(b *EventBroadcaster) {
		b.captureStack = enabled
	}
}

// nopReporter 未配置指标时使用
type nopReporter struct{}

func (nopReporter) LogSubscribe(pkgif.ChannelKind)         {}
func (nopReporter) LogDispose(pkgif.ChannelKind)           {}
func (nopReporter) LogPublish(pkgif.ChannelKind, int)      {}
func (nopReporter) LogSubscriberFailure(pkgif.ChannelKind) {}
