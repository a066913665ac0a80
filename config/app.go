package config

import (
	"errors"
	"time"
)

// AppConfig 应用生命周期配置
type AppConfig struct {
	// StartTimeout 启动超时
	StartTimeout Duration `json:"start_timeout" mapstructure:"start_timeout"`

	// StopTimeout 停止超时
	StopTimeout Duration `json:"stop_timeout" mapstructure:"stop_timeout"`
}

// DefaultAppConfig 返回默认应用配置
func DefaultAppConfig() AppConfig {
	return AppConfig{
		StartTimeout: Duration(15 * time.Second),
		StopTimeout:  Duration(5 * time.Second),
	}
}

// Validate 验证应用配置
func (c AppConfig) Validate() error {
	if c.StartTimeout <= 0 {
		return errors.New("app start timeout must be positive")
	}
	if c.StopTimeout <= 0 {
		return errors.New("app stop timeout must be positive")
	}
	return nil
}
