package metrics

import (
	"go.uber.org/fx"

	"github.com/zapdaz/go-zapdaz/config"
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// Params Metrics 依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
}

// Result Metrics 模块输出
//
// 指标未启用时两个字段都为 nil，依赖方以 optional 方式注入。
type Result struct {
	fx.Out

	Collector *Collector
	Reporter  pkgif.BroadcastReporter
}

// Module 是 metrics 的 Fx 模块
var Module = fx.Module("metrics",
	fx.Provide(NewCollectorFromParams),
	fx.Invoke(registerServer),
)

// ConfigFromUnified 从统一配置获取指标配置
func ConfigFromUnified(cfg *config.Config) config.MetricsConfig {
	if cfg == nil {
		return config.DefaultMetricsConfig()
	}
	return cfg.Metrics
}

// NewCollectorFromParams 从参数创建 Collector
func NewCollectorFromParams(p Params) Result {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	if !cfg.Enabled {
		logger.Debug("指标收集未启用")
		return Result{}
	}

	c := NewCollector(cfg.Namespace, WithRuntimeMetrics())
	return Result{
		Collector: c,
		Reporter:  c,
	}
}

// serverInput 指标服务输入参数
type serverInput struct {
	fx.In

	LC         fx.Lifecycle
	Collector  *Collector     `optional:"true"`
	UnifiedCfg *config.Config `optional:"true"`
}

// registerServer 配置了监听地址时注册指标 HTTP 服务
func registerServer(input serverInput) {
	cfg := ConfigFromUnified(input.UnifiedCfg)
	if input.Collector == nil || cfg.ListenAddr == "" {
		return
	}

	srv := NewServer(cfg.ListenAddr, cfg.Path, input.Collector)
	input.LC.Append(fx.Hook{
		OnStart: srv.Start,
		OnStop:  srv.Stop,
	})
}
