package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// TestNewConfig 测试创建默认配置
func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	require.NotNil(t, cfg)

	// 验证默认配置有效
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "zapdaz", cfg.Pages.Namespace)
	assert.Equal(t, []string{"Index", "Example1", "Example2"}, cfg.Pages.Enabled)
	assert.True(t, cfg.Broadcaster.LogSubscriberFailures)
	assert.Equal(t, 5*time.Second, cfg.App.StopTimeout.Duration())
}

// TestConfig_ValidateCollectsAllErrors 测试验证返回全部错误
func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Log.Level = "loud"
	cfg.Metrics.Path = "metrics"
	cfg.Pages.Namespace = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Contains(t, err.Error(), "must start with /")
	assert.Contains(t, err.Error(), "namespace must not be empty")
}

// TestLogConfig 测试日志配置
func TestLogConfig(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		cfg := DefaultLogConfig()
		assert.Equal(t, "info", cfg.Level)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		cfg := DefaultLogConfig()
		cfg.Format = "xml"
		assert.Error(t, cfg.Validate())
	})

	t.Run("InvalidSubsystemLevel", func(t *testing.T) {
		cfg := DefaultLogConfig()
		cfg.Subsystems = map[string]string{"core/broadcaster": "verbose"}
		assert.ErrorContains(t, cfg.Validate(), "core/broadcaster")
	})
}

// TestMetricsConfig 测试指标配置
func TestMetricsConfig(t *testing.T) {
	t.Run("DisabledSkipsChecks", func(t *testing.T) {
		cfg := MetricsConfig{Enabled: false}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("InvalidListenAddr", func(t *testing.T) {
		cfg := DefaultMetricsConfig()
		cfg.ListenAddr = "no-port"
		assert.Error(t, cfg.Validate())
	})

	t.Run("ValidListenAddr", func(t *testing.T) {
		cfg := DefaultMetricsConfig()
		cfg.ListenAddr = "127.0.0.1:9464"
		assert.NoError(t, cfg.Validate())
	})
}

// TestPagesConfig_Duplicate 测试重复页面
func TestPagesConfig_Duplicate(t *testing.T) {
	cfg := DefaultPagesConfig()
	cfg.Enabled = append(cfg.Enabled, "Index")
	assert.ErrorContains(t, cfg.Validate(), `"Index" listed twice`)
}

// TestFromJSON 测试从 JSON 加载
func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"app": {"stop_timeout": "2s"},
		"log": {"level": "debug", "format": "json"},
		"metrics": {"enabled": false},
		"pages": {"enabled": ["Index"]}
	}`)

	cfg, err := FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.App.StopTimeout.Duration())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"Index"}, cfg.Pages.Enabled)

	// 未出现的字段保留默认值
	assert.Equal(t, "zapdaz", cfg.Pages.Namespace)
	assert.Equal(t, 15*time.Second, cfg.App.StartTimeout.Duration())
}

// TestFromJSON_LowercaseKeys 测试 viper 风格的小写键
func TestFromJSON_LowercaseKeys(t *testing.T) {
	cfg, err := FromJSON([]byte(`{"broadcaster": {"capture_stack": false}, "app": {"start_timeout": 1000000000}}`))
	require.NoError(t, err)
	assert.False(t, cfg.Broadcaster.CaptureStack)
	assert.Equal(t, time.Second, cfg.App.StartTimeout.Duration())
}

// TestFromJSON_Invalid 测试无效 JSON
func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"app": {"stop_timeout": "soon"}}`))
	assert.Error(t, err)
}

// TestToJSON_RoundTrip 测试序列化后可重新加载
func TestToJSON_RoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Metrics.ListenAddr = ":9464"

	data, err := cfg.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"stop_timeout": "5s"`)

	loaded, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

// TestValidateAndFix 测试自动修复
func TestValidateAndFix(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		cfg, err := ValidateAndFix(nil)
		require.NoError(t, err)
		assert.Equal(t, NewConfig(), cfg)
	})

	t.Run("FixesCommonProblems", func(t *testing.T) {
		cfg := NewConfig()
		cfg.App.StopTimeout = 0
		cfg.Log.Level = "DEBUG"
		cfg.Log.Format = ""
		cfg.Metrics.Path = "stats"
		cfg.Pages.Enabled = []string{"Index", "", "Index", "Example1"}

		fixed, err := ValidateAndFix(cfg)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, fixed.App.StopTimeout.Duration())
		assert.Equal(t, "debug", fixed.Log.Level)
		assert.Equal(t, "text", fixed.Log.Format)
		assert.Equal(t, "/stats", fixed.Metrics.Path)
		assert.Equal(t, []string{"Index", "Example1"}, fixed.Pages.Enabled)
	})

	t.Run("Unfixable", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Log.Level = "loud"
		_, err := ValidateAndFix(cfg)
		assert.Error(t, err)
	})
}

// TestMustValidate 测试 MustValidate
func TestMustValidate(t *testing.T) {
	assert.NotPanics(t, func() { MustValidate(NewConfig()) })
	assert.Panics(t, func() { MustValidate(nil) })
}

// TestDuration 测试时长的几种输入形式
func TestDuration(t *testing.T) {
	t.Run("JSONNumber", func(t *testing.T) {
		var d Duration
		require.NoError(t, d.UnmarshalJSON([]byte("1500000000")))
		assert.Equal(t, 1500*time.Millisecond, d.Duration())
	})

	t.Run("JSONBool", func(t *testing.T) {
		var d Duration
		assert.Error(t, d.UnmarshalJSON([]byte("true")))
	})

	t.Run("Text", func(t *testing.T) {
		var d Duration
		require.NoError(t, d.UnmarshalText([]byte("2m")))
		assert.Equal(t, "2m0s", d.String())
		assert.Error(t, d.UnmarshalText([]byte("soon")))
	})
}

// TestDurationDecodeHook 测试 mapstructure 解码钩子
func TestDurationDecodeHook(t *testing.T) {
	hook := DurationDecodeHook()
	strType := reflect.TypeOf("")
	durType := reflect.TypeOf(Duration(0))

	got, err := hook(strType, durType, "3s")
	require.NoError(t, err)
	assert.Equal(t, Duration(3*time.Second), got)

	got, err = hook(reflect.TypeOf(0), durType, 42)
	require.NoError(t, err)
	assert.Equal(t, Duration(42), got)

	// 非 Duration 目标原样返回
	got, err = hook(strType, strType, "3s")
	require.NoError(t, err)
	assert.Equal(t, "3s", got)

	_, err = hook(strType, durType, "soon")
	assert.Error(t, err)
}
