package config

import (
	"encoding/json"
	"fmt"
)

// FromJSON 从 JSON 数据创建配置
//
// 未出现的字段保留默认值。JSON 键名与字段的 json 标签对应，大小写不敏感，
// 因此 viper.AllSettings() 序列化后的小写键也能直接加载。
//
// 示例 JSON:
//
//	{
//	  "log": {"level": "debug"},
//	  "metrics": {"enabled": true, "listen_addr": "127.0.0.1:9464"}
//	}
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ToJSON 将配置序列化为带缩进的 JSON
func (c *Config) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
