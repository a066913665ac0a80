// Package logger 安装 zapdaz 的进程级日志 handler
//
// 日志级别来自 config.LogConfig，可以被环境变量覆盖：
//   - ZAPDAZ_LOG_LEVEL: 格式 组件=级别,组件=级别,默认级别
//     示例: core/broadcaster=debug,app/page=warn,info
//   - ZAPDAZ_LOG_FORMAT: text 或 json
//   - ZAPDAZ_LOG_ADD_SOURCE: true 或 false
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/zapdaz/go-zapdaz/config"
)

// 环境变量名
const (
	EnvLevel     = "ZAPDAZ_LOG_LEVEL"
	EnvFormat    = "ZAPDAZ_LOG_FORMAT"
	EnvAddSource = "ZAPDAZ_LOG_ADD_SOURCE"
)

// LogFormat 日志输出格式
type LogFormat int

const (
	// FormatText 文本格式（默认）
	FormatText LogFormat = iota
	// FormatJSON JSON 格式
	FormatJSON
)

// Config 解析后的日志配置
type Config struct {
	// DefaultLevel 默认日志级别
	DefaultLevel slog.Level

	// SubsystemLevels 各组件的日志级别
	SubsystemLevels map[string]slog.Level

	// Format 输出格式
	Format LogFormat

	// AddSource 是否添加源码位置
	AddSource bool
}

// LevelForSubsystem 获取指定组件的日志级别
func (c *Config) LevelForSubsystem(subsystem string) slog.Level {
	if level, ok := c.SubsystemLevels[subsystem]; ok {
		return level
	}
	return c.DefaultLevel
}

// MinLevel 返回所有组件中最低的级别
func (c *Config) MinLevel() slog.Level {
	lowest := c.DefaultLevel
	for _, lvl := range c.SubsystemLevels {
		if lvl < lowest {
			lowest = lvl
		}
	}
	return lowest
}

// FromLogConfig 由 config.LogConfig 构建日志配置，并应用环境变量覆盖
func FromLogConfig(lc config.LogConfig) *Config {
	cfg := &Config{
		DefaultLevel:    slog.LevelInfo,
		SubsystemLevels: make(map[string]slog.Level, len(lc.Subsystems)),
		Format:          parseFormat(lc.Format),
		AddSource:       lc.AddSource,
	}
	if level, ok := parseLevel(lc.Level); ok {
		cfg.DefaultLevel = level
	}
	for sub, name := range lc.Subsystems {
		if level, ok := parseLevel(name); ok {
			cfg.SubsystemLevels[sub] = level
		}
	}

	applyEnv(cfg)
	return cfg
}

// applyEnv 应用环境变量覆盖
func applyEnv(cfg *Config) {
	if levelStr := os.Getenv(EnvLevel); levelStr != "" {
		parseLevelConfig(cfg, levelStr)
	}
	if formatStr := os.Getenv(EnvFormat); formatStr != "" {
		cfg.Format = parseFormat(formatStr)
	}
	if addSourceStr := os.Getenv(EnvAddSource); addSourceStr != "" {
		cfg.AddSource = addSourceStr != "false" && addSourceStr != "0"
	}
}

// parseLevelConfig 解析日志级别配置字符串
// 格式: subsystem=level,subsystem=level,defaultLevel
func parseLevelConfig(cfg *Config, levelStr string) {
	for _, part := range strings.Split(levelStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if subsystem, levelName, ok := strings.Cut(part, "="); ok {
			if level, ok := parseLevel(strings.TrimSpace(levelName)); ok {
				cfg.SubsystemLevels[strings.TrimSpace(subsystem)] = level
			}
			continue
		}

		if level, ok := parseLevel(part); ok {
			cfg.DefaultLevel = level
		}
	}
}

// parseLevel 解析日志级别名称
func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func parseFormat(name string) LogFormat {
	if strings.EqualFold(name, "json") {
		return FormatJSON
	}
	return FormatText
}
