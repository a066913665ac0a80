package zapdaz

import (
	"reflect"

	"github.com/zapdaz/go-zapdaz/internal/app/page"
	"github.com/zapdaz/go-zapdaz/internal/core/broadcaster"
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              广播器类型
// ════════════════════════════════════════════════════════════════════════════

type (
	// Broadcaster 事件广播器
	Broadcaster = pkgif.Broadcaster

	// Subscription 订阅句柄
	Subscription = pkgif.Subscription

	// Handler 订阅回调
	Handler = pkgif.Handler

	// Channel 广播通道
	Channel = pkgif.Channel

	// ChannelKind 通道类型
	ChannelKind = pkgif.ChannelKind

	// Registration 注册表条目快照
	Registration = pkgif.Registration

	// ErrorHandler 订阅者失败处理函数
	ErrorHandler = broadcaster.ErrorHandler
)

// 通道类型
const (
	ChannelInvalid = pkgif.ChannelInvalid
	ChannelNamed   = pkgif.ChannelNamed
	ChannelTyped   = pkgif.ChannelTyped
)

// NamedChannel 创建命名通道
func NamedChannel(name string) Channel {
	return pkgif.NamedChannel(name)
}

// TypedChannel 创建消息类型通道
func TypedChannel(t reflect.Type) Channel {
	return pkgif.TypedChannel(t)
}

// SubscribeTo 以类型化回调订阅消息类型 T
func SubscribeTo[T any](b Broadcaster, fn func(T)) (Subscription, error) {
	return broadcaster.SubscribeTo(b, fn)
}

// SubscribeOnceTo 以类型化回调一次性订阅消息类型 T
func SubscribeOnceTo[T any](b Broadcaster, fn func(T)) (Subscription, error) {
	return broadcaster.SubscribeOnceTo(b, fn)
}

// ════════════════════════════════════════════════════════════════════════════
//                              页面类型
// ════════════════════════════════════════════════════════════════════════════

type (
	// Page 页面生命周期接口
	Page = pkgif.Page

	// PageRegistry 页面注册表
	PageRegistry = page.Registry

	// LifecycleEvent 页面生命周期事件
	LifecycleEvent = page.LifecycleEvent

	// Phase 生命周期阶段
	Phase = page.Phase
)

// 生命周期阶段
const (
	PhaseInit       = page.PhaseInit
	PhaseActivate   = page.PhaseActivate
	PhaseDeactivate = page.PhaseDeactivate
)
