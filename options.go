package zapdaz

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/fx"

	"github.com/zapdaz/go-zapdaz/config"
	"github.com/zapdaz/go-zapdaz/internal/app/page"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 统一配置
	config *config.Config

	// 订阅者失败处理函数，nil 表示按配置处理
	errorHandler ErrorHandler

	// 输出 Fx 容器事件日志
	fxDebug bool

	// 用户自定义 Fx 选项
	fxOptions []fx.Option
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{
		config: config.NewConfig(),
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              配置选项
// ════════════════════════════════════════════════════════════════════════════

// WithConfig 使用完整配置替换默认配置
//
// 之后的选项在该配置上继续修改。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return errors.New("config must not be nil")
		}
		o.config = cfg
		return nil
	}
}

// WithConfigJSON 从 JSON 加载配置
func WithConfigJSON(data []byte) Option {
	return func(o *options) error {
		cfg, err := config.FromJSON(data)
		if err != nil {
			return err
		}
		o.config = cfg
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              广播器选项
// ════════════════════════════════════════════════════════════════════════════

// WithSubscriberErrorHandler 设置订阅者失败处理函数
//
// 处理函数在发布者的 goroutine 上同步调用。
func WithSubscriberErrorHandler(h ErrorHandler) Option {
	return func(o *options) error {
		o.errorHandler = h
		return nil
	}
}

// WithStackCapture 设置订阅者失败是否记录调用栈
func WithStackCapture(enable bool) Option {
	return func(o *options) error {
		o.config.Broadcaster.CaptureStack = enable
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              指标选项
// ════════════════════════════════════════════════════════════════════════════

// WithMetrics 启用或禁用 Prometheus 指标
func WithMetrics(enable bool) Option {
	return func(o *options) error {
		o.config.Metrics.Enabled = enable
		return nil
	}
}

// WithMetricsListenAddr 设置指标 HTTP 服务监听地址并启用指标
func WithMetricsListenAddr(addr string) Option {
	return func(o *options) error {
		o.config.Metrics.Enabled = true
		o.config.Metrics.ListenAddr = addr
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              页面选项
// ════════════════════════════════════════════════════════════════════════════

// WithPages 设置启动时挂载的页面
//
// 参数为页面 CID，例如 "Index"、"Example1"。不传参数表示不挂载页面。
func WithPages(cids ...string) Option {
	return func(o *options) error {
		for _, cid := range cids {
			if _, ok := page.Builtin(cid); !ok {
				return fmt.Errorf("unknown page %q", cid)
			}
		}
		o.config.Pages.Enabled = append([]string(nil), cids...)
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              日志选项
// ════════════════════════════════════════════════════════════════════════════

// WithLogLevel 设置日志级别
func WithLogLevel(level string) Option {
	return func(o *options) error {
		level = strings.ToLower(level)
		if !config.IsLogLevel(level) {
			return fmt.Errorf("invalid log level %q", level)
		}
		o.config.Log.Level = level
		return nil
	}
}

// WithFxDebug 输出 Fx 容器事件日志
func WithFxDebug(enable bool) Option {
	return func(o *options) error {
		o.fxDebug = enable
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              扩展选项
// ════════════════════════════════════════════════════════════════════════════

// WithFxOptions 追加自定义 Fx 选项
//
// 可用于向容器注入额外组件，例如订阅广播器的业务模块。
func WithFxOptions(opts ...fx.Option) Option {
	return func(o *options) error {
		o.fxOptions = append(o.fxOptions, opts...)
		return nil
	}
}
