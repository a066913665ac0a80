package zapdaz

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	appmods "github.com/zapdaz/go-zapdaz/internal/app"
	"github.com/zapdaz/go-zapdaz/internal/app/page"
	"github.com/zapdaz/go-zapdaz/internal/core/metrics"
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
	"github.com/zapdaz/go-zapdaz/pkg/lib/log"
)

var fxLogger = log.Logger("zapdaz/fx")

// components 从容器中取出的组件
type components struct {
	fx.In

	Broadcaster pkgif.Broadcaster
	Pages       *page.Registry
	Collector   *metrics.Collector `optional:"true"`
}

// buildFxApp 构建 Fx 应用
//
// 加载顺序（按依赖）：
//  1. 配置注入
//  2. Monitoring: metrics（按配置）
//  3. Core: broadcaster
//  4. Pages: page registry
//  5. 用户自定义 Fx 选项
func buildFxApp(o *options, app *App) (*fx.App, error) {
	// ════════════════════════════════════════════════════════════════════════
	// 1. 配置验证（前置）
	// ════════════════════════════════════════════════════════════════════════
	if err := o.config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	modules := []fx.Option{
		fx.Supply(o.config),
		appmods.AllModules(o.config),
	}

	if o.errorHandler != nil {
		modules = append(modules, fx.Supply(o.errorHandler))
	}

	// ════════════════════════════════════════════════════════════════════════
	// 2. 用户自定义选项
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, o.fxOptions...)

	// ════════════════════════════════════════════════════════════════════════
	// 3. 取出组件 + 日志
	// ════════════════════════════════════════════════════════════════════════
	zl, err := newFxZapLogger(o.fxDebug)
	if err != nil {
		return nil, fmt.Errorf("create fx logger: %w", err)
	}

	modules = append(modules,
		fx.Invoke(func(c components) {
			app.broadcaster = c.Broadcaster
			app.pages = c.Pages
			app.collector = c.Collector
		}),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zl}
		}),
	)

	fxApp := fx.New(modules...)
	if err := fxApp.Err(); err != nil {
		fxLogger.Error("Fx 应用构建失败", "error", err)
		return nil, err
	}
	return fxApp, nil
}

// newFxZapLogger 创建 Fx 事件日志
//
// 默认丢弃，debug 时使用 zap 开发配置输出到 stderr。
func newFxZapLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
