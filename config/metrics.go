package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// MetricsConfig Prometheus 指标配置
type MetricsConfig struct {
	// Enabled 是否启用指标收集
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// Namespace 指标名前缀
	Namespace string `json:"namespace" mapstructure:"namespace"`

	// ListenAddr 指标 HTTP 服务监听地址，空字符串表示不对外暴露
	ListenAddr string `json:"listen_addr,omitempty" mapstructure:"listen_addr"`

	// Path 指标 HTTP 路径
	Path string `json:"path" mapstructure:"path"`
}

// DefaultMetricsConfig 返回默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   true,
		Namespace: "zapdaz",
		Path:      "/metrics",
	}
}

// Validate 验证指标配置
func (c MetricsConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Namespace == "" {
		return errors.New("metrics namespace must not be empty")
	}
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("metrics path %q must start with /", c.Path)
	}
	if c.ListenAddr != "" {
		if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
			return fmt.Errorf("invalid metrics listen address %q: %w", c.ListenAddr, err)
		}
	}
	return nil
}
