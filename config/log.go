package config

import (
	"fmt"
	"strings"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 默认日志级别：debug / info / warn / error
	Level string `json:"level" mapstructure:"level"`

	// Format 输出格式：text / json
	Format string `json:"format" mapstructure:"format"`

	// Subsystems 各组件的日志级别，键为组件名（如 "core/broadcaster"）
	Subsystems map[string]string `json:"subsystems,omitempty" mapstructure:"subsystems"`

	// AddSource 是否添加源码位置
	AddSource bool `json:"add_source" mapstructure:"add_source"`

	// File 日志文件路径（追加写入），空字符串表示输出到 stderr
	File string `json:"file,omitempty" mapstructure:"file"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	if !IsLogLevel(c.Level) {
		return fmt.Errorf("invalid log level %q", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Format)
	}
	for sub, lvl := range c.Subsystems {
		if !IsLogLevel(lvl) {
			return fmt.Errorf("invalid log level %q for subsystem %q", lvl, sub)
		}
	}
	return nil
}

// IsLogLevel 是否为可识别的日志级别名称
func IsLogLevel(name string) bool {
	switch strings.ToLower(name) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
