package config

import (
	"errors"
	"fmt"
)

// PagesConfig 页面配置
type PagesConfig struct {
	// Namespace 页面命名空间名称（日志中显示）
	Namespace string `json:"namespace" mapstructure:"namespace"`

	// Enabled 启动时挂载的页面 CID 列表
	Enabled []string `json:"enabled" mapstructure:"enabled"`
}

// DefaultPagesConfig 返回默认页面配置
func DefaultPagesConfig() PagesConfig {
	return PagesConfig{
		Namespace: "zapdaz",
		Enabled:   []string{"Index", "Example1", "Example2"},
	}
}

// Validate 验证页面配置
func (c PagesConfig) Validate() error {
	if c.Namespace == "" {
		return errors.New("pages namespace must not be empty")
	}
	seen := make(map[string]struct{}, len(c.Enabled))
	for _, cid := range c.Enabled {
		if cid == "" {
			return errors.New("page cid must not be empty")
		}
		if _, ok := seen[cid]; ok {
			return fmt.Errorf("page %q listed twice", cid)
		}
		seen[cid] = struct{}{}
	}
	return nil
}
