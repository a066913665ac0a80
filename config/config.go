// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义，提供 DefaultXxxConfig() 和 Validate()
//   - 支持从 JSON 加载和保存配置
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Metrics.Enabled = false
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

import (
	"go.uber.org/multierr"
)

// Config 是 zapdaz 的完整配置结构
//
// 配置按照功能模块组织：
//   - App: 应用生命周期
//   - Broadcaster: 事件广播器
//   - Metrics: Prometheus 指标
//   - Log: 日志
//   - Pages: 页面生命周期与命名空间
type Config struct {
	// App 应用生命周期配置
	App AppConfig `json:"app" mapstructure:"app"`

	// Broadcaster 事件广播器配置
	Broadcaster BroadcasterConfig `json:"broadcaster" mapstructure:"broadcaster"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`

	// Log 日志配置
	Log LogConfig `json:"log" mapstructure:"log"`

	// Pages 页面配置
	Pages PagesConfig `json:"pages" mapstructure:"pages"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		App:         DefaultAppConfig(),
		Broadcaster: DefaultBroadcasterConfig(),
		Metrics:     DefaultMetricsConfig(),
		Log:         DefaultLogConfig(),
		Pages:       DefaultPagesConfig(),
	}
}

// Validate 验证配置
//
// 校验所有子配置，返回合并后的全部错误（而不是遇到第一个就返回）。
func (c *Config) Validate() error {
	var err error
	err = multierr.Append(err, c.App.Validate())
	err = multierr.Append(err, c.Broadcaster.Validate())
	err = multierr.Append(err, c.Metrics.Validate())
	err = multierr.Append(err, c.Log.Validate())
	err = multierr.Append(err, c.Pages.Validate())
	return err
}
