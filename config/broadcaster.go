package config

// BroadcasterConfig 事件广播器配置
//
// 广播器本身没有需要调优的容量参数（同步分发、无缓冲），
// 这里只控制订阅者执行失败时的诊断输出。
type BroadcasterConfig struct {
	// LogSubscriberFailures 订阅者 panic 时是否写错误日志
	LogSubscriberFailures bool `json:"log_subscriber_failures" mapstructure:"log_subscriber_failures"`

	// CaptureStack 是否在 SubscriberExecutionError 中记录调用栈
	CaptureStack bool `json:"capture_stack" mapstructure:"capture_stack"`
}

// DefaultBroadcasterConfig 返回默认广播器配置
func DefaultBroadcasterConfig() BroadcasterConfig {
	return BroadcasterConfig{
		LogSubscriberFailures: true,
		CaptureStack:          true,
	}
}

// Validate 验证广播器配置
func (c BroadcasterConfig) Validate() error {
	return nil
}
