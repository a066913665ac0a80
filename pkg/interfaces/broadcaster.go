// Package interfaces 定义 zapdaz 公共接口
//
// 本文件定义 Broadcaster 接口，提供进程内广播（发布/订阅）功能。
package interfaces

import (
	"fmt"
	"reflect"
)

// ============================================================================
// 通道
// ============================================================================

// ChannelKind 通道类型
type ChannelKind int

const (
	// ChannelInvalid 无效通道（零值）
	ChannelInvalid ChannelKind = iota
	// ChannelNamed 字符串命名通道
	ChannelNamed
	// ChannelTyped 消息类型通道
	ChannelTyped
)

// String 返回通道类型名称
func (k ChannelKind) String() string {
	switch k {
	case ChannelNamed:
		return "named"
	case ChannelTyped:
		return "typed"
	default:
		return "invalid"
	}
}

// Channel 广播通道
//
// Channel 是一个标签联合：要么是字符串名称，要么是消息类型。
// 两种寻址方式使用独立的注册表，互不干扰。
// 零值 Channel 无效。
type Channel struct {
	name string
	typ  reflect.Type
	kind ChannelKind
}

// NamedChannel 创建字符串命名通道
func NamedChannel(name string) Channel {
	return Channel{name: name, kind: ChannelNamed}
}

// TypedChannel 创建消息类型通道
//
// typ 为 nil 时返回无效通道。
func TypedChannel(typ reflect.Type) Channel {
	if typ == nil {
		return Channel{}
	}
	return Channel{typ: typ, kind: ChannelTyped}
}

// MessageType 返回类型 T 对应的消息类型通道
//
//	sub, _ := b.Subscribe(pkgif.MessageType[PageReady](), cb)
func MessageType[T any]() Channel {
	return TypedChannel(reflect.TypeOf((*T)(nil)).Elem())
}

// Kind 返回通道类型
func (c Channel) Kind() ChannelKind { return c.kind }

// IsValid 通道是否有效
func (c Channel) IsValid() bool { return c.kind != ChannelInvalid }

// Name 返回通道名称（仅命名通道）
func (c Channel) Name() string { return c.name }

// Type 返回消息类型（仅类型通道）
func (c Channel) Type() reflect.Type { return c.typ }

// String 返回可读的通道描述
func (c Channel) String() string {
	switch c.kind {
	case ChannelNamed:
		return fmt.Sprintf("named(%q)", c.name)
	case ChannelTyped:
		return fmt.Sprintf("typed(%s)", c.typ)
	default:
		return "invalid"
	}
}

// ============================================================================
// Broadcaster 接口
// ============================================================================

// Handler 订阅回调
//
// 命名通道收到 Publish 的 data 参数；类型通道收到消息实例本身。
type Handler func(data any)

// Broadcaster 定义进程内广播接口
//
// 分发是同步的：Publish 在调用者的 goroutine 上按注册顺序依次调用回调。
type Broadcaster interface {
	// Subscribe 订阅通道
	//
	// channel 可以是 string、Channel、reflect.Type 或指向消息类型的指针（如 new(MyEvent)）。
	Subscribe(channel any, cb Handler) (Subscription, error)

	// SubscribeOnce 订阅通道，回调触发一次后自动取消
	SubscribeOnce(channel any, cb Handler) (Subscription, error)

	// Publish 向命名通道发布数据
	Publish(channel string, data any)

	// PublishMessage 按消息实例的运行时类型发布
	PublishMessage(msg any) error

	// EventLookup 返回命名通道注册表快照
	EventLookup() map[string][]Registration

	// MessageHandlers 返回消息类型注册表快照
	MessageHandlers() []Registration
}

// Subscription 定义订阅句柄接口
type Subscription interface {
	// ID 返回订阅唯一标识
	ID() string

	// Channel 返回订阅的通道
	Channel() Channel

	// Dispose 取消订阅，可多次调用
	Dispose()

	// Disposed 是否已取消
	Disposed() bool
}

// Registration 注册表中的一条记录（只读快照）
type Registration struct {
	// ID 对应 Subscription.ID()
	ID string

	// Channel 通道
	Channel Channel

	// Handler 实际注册的回调；SubscribeOnce 注册的是包装函数
	Handler Handler

	// Once 是否为一次性订阅
	Once bool
}

// ============================================================================
// 指标上报
// ============================================================================

// BroadcastReporter 广播指标上报接口
type BroadcastReporter interface {
	// LogSubscribe 记录新增订阅
	LogSubscribe(kind ChannelKind)

	// LogDispose 记录取消订阅
	LogDispose(kind ChannelKind)

	// LogPublish 记录一次发布及实际投递的订阅者数量
	LogPublish(kind ChannelKind, delivered int)

	// LogSubscriberFailure 记录订阅者执行失败
	LogSubscriberFailure(kind ChannelKind)
}
