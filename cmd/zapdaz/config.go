package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/zapdaz/go-zapdaz/config"
)

// envPrefix 环境变量前缀，例如 ZAPDAZ_METRICS_ENABLED
const envPrefix = "ZAPDAZ"

// optionalKeys 默认配置中省略、但允许从环境变量设置的键
var optionalKeys = []string{
	"metrics.listen_addr",
	"log.file",
}

// loadDotEnv 加载当前目录的 .env 文件
//
// .env.local 覆盖 .env，已存在的环境变量不会被覆盖。
func loadDotEnv() {
	for _, f := range []string{".env.local", ".env"} {
		_ = godotenv.Load(f)
	}
}

// loadConfig 按优先级加载配置：
//  1. 环境变量（ZAPDAZ_*）
//  2. 配置文件（path 非空时）
//  3. 默认值
func loadConfig(v *viper.Viper, path string) (*config.Config, error) {
	defaults, err := config.NewConfig().ToJSON()
	if err != nil {
		return nil, err
	}

	var seed map[string]any
	if err := json.Unmarshal(defaults, &seed); err != nil {
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	for key, val := range seed {
		v.SetDefault(key, val)
	}

	// 文件类型按扩展名判断（json / yaml / toml）
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range append(v.AllKeys(), optionalKeys...) {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg := &config.Config{}
	if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		config.DurationDecodeHook(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg, err = config.ValidateAndFix(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
