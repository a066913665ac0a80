package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateAll 验证整个配置的有效性
//
// 这是 Config.Validate() 的别名，额外处理 nil。
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并尝试自动修复常见问题
//
// 可修复的问题：
//   - 超时为零或负数 -> 使用默认值
//   - 日志级别/格式大小写 -> 统一为小写，空值使用默认值
//   - 指标路径缺少前导斜杠 -> 补齐
//   - 页面列表中的空项和重复项 -> 移除
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	defaults := NewConfig()

	if c.App.StartTimeout <= 0 {
		c.App.StartTimeout = defaults.App.StartTimeout
	}
	if c.App.StopTimeout <= 0 {
		c.App.StopTimeout = defaults.App.StopTimeout
	}

	c.Log.Level = strings.ToLower(c.Log.Level)
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Format = strings.ToLower(c.Log.Format)
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = defaults.Metrics.Namespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = defaults.Metrics.Path
	} else if !strings.HasPrefix(c.Metrics.Path, "/") {
		c.Metrics.Path = "/" + c.Metrics.Path
	}

	if c.Pages.Namespace == "" {
		c.Pages.Namespace = defaults.Pages.Namespace
	}
	pages := c.Pages.Enabled[:0]
	seen := make(map[string]struct{}, len(c.Pages.Enabled))
	for _, cid := range c.Pages.Enabled {
		if cid == "" {
			continue
		}
		if _, ok := seen[cid]; ok {
			continue
		}
		seen[cid] = struct{}{}
		pages = append(pages, cid)
	}
	c.Pages.Enabled = pages

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed after fixes: %w", err)
	}

	return c, nil
}

// MustValidate 验证配置，如果失败则 panic
//
// 仅用于初始化阶段或测试代码。
func MustValidate(c *Config) {
	if err := ValidateAll(c); err != nil {
		panic(fmt.Sprintf("config validation failed: %v", err))
	}
}
