package broadcaster

import (
	"errors"
	"fmt"
	"reflect"

	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// ============================================================================
// 错误定义
// ============================================================================

// ErrInvalidChannel 无效的通道名称、消息类型或消息实例
var ErrInvalidChannel = errors.New("invalid channel")

// 无效通道错误的主语
const (
	subjectType     = "type"
	subjectInstance = "instance"
)

// InvalidChannelError 通道参数无效
//
// 由 Subscribe / SubscribeOnce（Subject 为 "type"）和
// PublishMessage（Subject 为 "instance"）同步返回，属于调用方的接线错误。
type InvalidChannelError struct {
	// Subject "type" 或 "instance"
	Subject string

	// Value 无效参数的字符串形式，nil 表示为 "undefined"
	Value string
}

// Error 实现 error 接口
func (e *InvalidChannelError) Error() string {
	return fmt.Sprintf("Invalid channel name or %s: %s.", e.Subject, e.Value)
}

// Is 使 errors.Is(err, ErrInvalidChannel) 成立
func (e *InvalidChannelError) Is(target error) bool {
	return target == ErrInvalidChannel
}

func invalidChannel(subject string, v any) *InvalidChannelError {
	return &InvalidChannelError{Subject: subject, Value: describe(v)}
}

// describe 返回参数的字符串形式
func describe(v any) string {
	if v == nil {
		return "undefined"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Sprintf("(%T)(nil)", v)
	}
	return fmt.Sprintf("%v", v)
}

// SubscriberExecutionError 订阅者回调执行失败
//
// 在分发时捕获，只交给错误处理器和指标上报，不会传播给发布者。
type SubscriberExecutionError struct {
	// Channel 发生失败的通道
	Channel pkgif.Channel

	// SubscriptionID 失败的订阅
	SubscriptionID string

	// Value recover() 得到的值
	Value any

	// Stack 调用栈（未开启 CaptureStack 时为空）
	Stack []byte
}

// Error 实现 error 接口
func (e *SubscriberExecutionError) Error() string {
	return fmt.Sprintf("subscriber %s on %s failed: %v", e.SubscriptionID, e.Channel, e.Value)
}

// Unwrap 当 panic 值是 error 时返回它
func (e *SubscriberExecutionError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler 订阅者执行失败处理函数
type ErrorHandler func(err *SubscriberExecutionError)
