package broadcaster

import (
	"context"

	"go.uber.org/fx"

	"github.com/zapdaz/go-zapdaz/config"
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params 广播器依赖参数
type Params struct {
	fx.In

	Config       *config.Config          `optional:"true"`
	Reporter     pkgif.BroadcastReporter `optional:"true"`
	ErrorHandler ErrorHandler            `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Broadcaster      pkgif.Broadcaster
	EventBroadcaster *EventBroadcaster
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("broadcaster",
		fx.Provide(ProvideBroadcaster),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideBroadcaster 提供 EventBroadcaster 实例
func ProvideBroadcaster(p Params) Result {
	cfg := config.DefaultBroadcasterConfig()
	if p.Config != nil {
		cfg = p.Config.Broadcaster
	}

	opts := []Option{
		WithReporter(p.Reporter),
		WithStackCapture(cfg.CaptureStack),
	}
	switch {
	case p.ErrorHandler != nil:
		opts = append(opts, WithErrorHandler(p.ErrorHandler))
	case !cfg.LogSubscriberFailures:
		opts = append(opts, WithErrorHandler(func(*SubscriberExecutionError) {}))
	}

	b := New(opts...)
	return Result{
		Broadcaster:      b,
		EventBroadcaster: b,
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC          fx.Lifecycle
	Broadcaster *EventBroadcaster
}

// registerLifecycle 注册生命周期
//
// 广播器没有后台 goroutine，停止时只记录残留的订阅数量。
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			named := 0
			for _, regs := range input.Broadcaster.EventLookup() {
				named += len(regs)
			}
			logger.Debug("广播器停止",
				"named", named,
				"typed", len(input.Broadcaster.MessageHandlers()))
			return nil
		},
	})
}
