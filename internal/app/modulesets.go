// Package app 提供模块集合清单
//
// modulesets.go 集中维护"哪些模块属于哪一层"，是根包组装 Fx 应用的唯一模块来源。
package app

import (
	"go.uber.org/fx"

	"github.com/zapdaz/go-zapdaz/config"
	"github.com/zapdaz/go-zapdaz/internal/app/page"
	"github.com/zapdaz/go-zapdaz/internal/core/broadcaster"
	"github.com/zapdaz/go-zapdaz/internal/core/metrics"
)

// ============================================================================
//                              固定必选模块集合
// ============================================================================

// CoreModules 核心模块组合
//
// 包含事件广播器，始终加载。
func CoreModules() fx.Option {
	return fx.Options(
		broadcaster.Module(),
	)
}

// PageModules 页面模块组合
//
// 依赖广播器发布生命周期事件。
func PageModules() fx.Option {
	return fx.Options(
		page.Module(),
	)
}

// ============================================================================
//                              可选模块
// ============================================================================

// MonitoringModules 监控模块组合
//
// 由 config.Metrics.Enabled 决定是否加载。未加载时广播器不上报指标。
func MonitoringModules(cfg *config.Config) fx.Option {
	if cfg != nil && !cfg.Metrics.Enabled {
		return fx.Options()
	}
	return metrics.Module
}

// ============================================================================
//                              组合模块集合
// ============================================================================

// AllModules 按配置组合所有模块
func AllModules(cfg *config.Config) fx.Option {
	return fx.Options(
		MonitoringModules(cfg),
		CoreModules(),
		PageModules(),
	)
}
