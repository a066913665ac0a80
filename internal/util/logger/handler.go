package logger

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/zapdaz/go-zapdaz/pkg/lib/log"
)

var (
	// globalOutput 全局日志输出目标，默认为 stderr
	globalOutput   io.Writer
	globalOutputMu sync.RWMutex
)

// dynamicWriter 每次写入时查找 globalOutput
// 这样即使在 handler 创建后修改输出，也能生效
type dynamicWriter struct{}

func (w *dynamicWriter) Write(p []byte) (n int, err error) {
	globalOutputMu.RLock()
	output := globalOutput
	globalOutputMu.RUnlock()
	return output.Write(p)
}

// componentHandler 按组件控制级别的 slog.Handler
//
// LazyLogger 通过 With("component", name) 附加组件名，
// WithAttrs 捕获该属性后，Enabled 使用对应组件的级别。
type componentHandler struct {
	cfg       *Config
	component string
	inner     slog.Handler
}

// newHandler 创建 handler
//
// inner 的级别设为所有组件中最低的级别，真正的过滤在 Enabled 中完成。
func newHandler(cfg *Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     cfg.MinLevel(),
		AddSource: cfg.AddSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// 简化时间格式
			if a.Key == slog.TimeKey {
				a.Key = "ts"
			}
			// 简化级别名称
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(levelToString(lvl))
				}
			}
			return a
		},
	}

	output := &dynamicWriter{}

	var inner slog.Handler
	if cfg.Format == FormatJSON {
		inner = slog.NewJSONHandler(output, opts)
	} else {
		inner = slog.NewTextHandler(output, opts)
	}

	return &componentHandler{cfg: cfg, inner: inner}
}

// Enabled 检查是否启用指定级别
func (h *componentHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.cfg.LevelForSubsystem(h.component)
}

// Handle 处理日志记录
func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner.Handle(ctx, r)
}

// WithAttrs 添加属性
func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	component := h.component
	for _, a := range attrs {
		if a.Key == log.ComponentKey {
			component = a.Value.String()
		}
	}
	return &componentHandler{
		cfg:       h.cfg,
		component: component,
		inner:     h.inner.WithAttrs(attrs),
	}
}

// WithGroup 添加组
func (h *componentHandler) WithGroup(name string) slog.Handler {
	return &componentHandler{
		cfg:       h.cfg,
		component: h.component,
		inner:     h.inner.WithGroup(name),
	}
}

// levelToString 将日志级别转换为小写字符串
func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "debug"
	case slog.LevelInfo:
		return "info"
	case slog.LevelWarn:
		return "warn"
	case slog.LevelError:
		return "error"
	default:
		return "info"
	}
}
