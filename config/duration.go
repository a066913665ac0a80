package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Duration 可从 "15s" 这样的字符串加载的时长
//
// JSON 中也接受数字（纳秒）；序列化时总是输出字符串。
type Duration time.Duration

// Duration 返回 time.Duration
func (d Duration) Duration() time.Duration { return time.Duration(d) }

// String 返回 "1m30s" 形式
func (d Duration) String() string { return time.Duration(d).String() }

// MarshalJSON 输出字符串形式
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON 接受字符串或纳秒数
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := parseDuration(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalText 从环境变量等纯文本来源解析
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := parseDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func parseDuration(v any) (Duration, error) {
	switch val := v.(type) {
	case string:
		td, err := time.ParseDuration(val)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", val, err)
		}
		return Duration(td), nil
	case float64:
		return Duration(int64(val)), nil
	case int:
		return Duration(val), nil
	case int64:
		return Duration(val), nil
	default:
		return 0, fmt.Errorf("duration must be a string like \"30s\" or nanoseconds, got %T", v)
	}
}

var durationType = reflect.TypeOf(Duration(0))

// DurationDecodeHook 供 viper / mapstructure 解码 Duration 字段
//
// 字符串按 time.ParseDuration 解析，数字按纳秒处理。
func DurationDecodeHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType {
			return data, nil
		}
		if _, ok := data.(Duration); ok {
			return data, nil
		}
		return parseDuration(data)
	}
}
