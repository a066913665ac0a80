package zapdaz

import (
	"errors"

	"github.com/zapdaz/go-zapdaz/internal/core/broadcaster"
)

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 应用生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNotStarted 应用未启动
	ErrNotStarted = errors.New("app not started")

	// ErrAlreadyStarted 应用已启动
	ErrAlreadyStarted = errors.New("app already started")

	// ErrAppClosed 应用已关闭
	ErrAppClosed = errors.New("app closed")

	// ────────────────────────────────────────────────────────────────────────
	// 广播器错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrInvalidChannel 无效的通道名称、消息类型或消息实例
	ErrInvalidChannel = broadcaster.ErrInvalidChannel
)

// InvalidChannelError 通道参数无效
type InvalidChannelError = broadcaster.InvalidChannelError

// SubscriberExecutionError 订阅者执行失败
type SubscriberExecutionError = broadcaster.SubscriberExecutionError
