package metrics

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
	"github.com/zapdaz/go-zapdaz/pkg/lib/log"
)

var logger = log.Logger("core/metrics")

const subsystem = "broadcaster"

// kindLabels 已知的通道种类，用于预先创建标签序列
var kindLabels = []pkgif.ChannelKind{pkgif.ChannelNamed, pkgif.ChannelTyped}

// ============================================================================
// Collector
// ============================================================================

// Collector 广播器指标收集器
type Collector struct {
	registry *prometheus.Registry
	clock    clock.Clock

	publishes     *prometheus.CounterVec
	deliveries    *prometheus.CounterVec
	failures      *prometheus.CounterVec
	subscriptions *prometheus.GaugeVec

	named kindCounters
	typed kindCounters
}

// kindCounters 单个通道种类的快照计数
type kindCounters struct {
	publishes     atomic.Uint64
	deliveries    atomic.Uint64
	failures      atomic.Uint64
	subscriptions atomic.Int64
	rate          *RateMeter
}

// CollectorOption Collector 选项
type CollectorOption func(*Collector)

// WithClock 设置速率统计使用的时钟
func WithClock(clk clock.Clock) CollectorOption {
	return func(c *Collector) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithRuntimeMetrics 同时注册 Go 运行时指标
func WithRuntimeMetrics() CollectorOption {
	return func(c *Collector) {
		c.registry.MustRegister(collectors.NewGoCollector())
	}
}

// NewCollector 创建指标收集器
//
// namespace 为指标名前缀，通常来自 config.MetricsConfig.Namespace。
func NewCollector(namespace string, opts ...CollectorOption) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		clock:    clock.New(),
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "publish_total",
			Help:      "Number of publish calls.",
		}, []string{"kind"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "deliveries_total",
			Help:      "Number of subscriber callbacks that returned normally.",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "subscriber_failures_total",
			Help:      "Number of subscriber callbacks that panicked.",
		}, []string{"kind"}),
		subscriptions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "subscriptions",
			Help:      "Number of active subscriptions.",
		}, []string{"kind"}),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.registry.MustRegister(c.publishes, c.deliveries, c.failures, c.subscriptions)
	for _, kind := range kindLabels {
		c.publishes.WithLabelValues(kind.String())
		c.deliveries.WithLabelValues(kind.String())
		c.failures.WithLabelValues(kind.String())
		c.subscriptions.WithLabelValues(kind.String())
	}
	c.named.rate = NewRateMeter(c.clock)
	c.typed.rate = NewRateMeter(c.clock)

	logger.Debug("指标收集器已创建", "namespace", namespace)
	return c
}

// 确保 Collector 实现 BroadcastReporter 接口
var _ pkgif.BroadcastReporter = (*Collector)(nil)

func (c *Collector) counters(kind pkgif.ChannelKind) *kindCounters {
	switch kind {
	case pkgif.ChannelNamed:
		return &c.named
	case pkgif.ChannelTyped:
		return &c.typed
	default:
		return nil
	}
}

// LogSubscribe 记录新增订阅
func (c *Collector) LogSubscribe(kind pkgif.ChannelKind) {
	k := c.counters(kind)
	if k == nil {
		return
	}
	k.subscriptions.Add(1)
	c.subscriptions.WithLabelValues(kind.String()).Inc()
}

// LogDispose 记录取消订阅
func (c *Collector) LogDispose(kind pkgif.ChannelKind) {
	k := c.counters(kind)
	if k == nil {
		return
	}
	k.subscriptions.Add(-1)
	c.subscriptions.WithLabelValues(kind.String()).Dec()
}

// LogPublish 记录一次发布
func (c *Collector) LogPublish(kind pkgif.ChannelKind, delivered int) {
	k := c.counters(kind)
	if k == nil {
		return
	}
	k.publishes.Add(1)
	k.rate.Mark(1)
	c.publishes.WithLabelValues(kind.String()).Inc()

	if delivered > 0 {
		k.deliveries.Add(uint64(delivered))
		c.deliveries.WithLabelValues(kind.String()).Add(float64(delivered))
	}
}

// LogSubscriberFailure 记录订阅者执行失败
func (c *Collector) LogSubscriberFailure(kind pkgif.ChannelKind) {
	k := c.counters(kind)
	if k == nil {
		return
	}
	k.failures.Add(1)
	c.failures.WithLabelValues(kind.String()).Inc()
}

// Registry 返回底层 Prometheus 注册表
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler 返回暴露注册表的 HTTP 处理器
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		Registry: c.registry,
	})
}

// ============================================================================
// 快照
// ============================================================================

// KindStats 单个通道种类的统计
type KindStats struct {
	Publishes     uint64  `json:"publishes"`
	Deliveries    uint64  `json:"deliveries"`
	Failures      uint64  `json:"failures"`
	Subscriptions int64   `json:"subscriptions"`
	PublishRate   float64 `json:"publishRate"`
}

// Snapshot 指标快照
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Named     KindStats `json:"named"`
	Typed     KindStats `json:"typed"`
}

// Snapshot 返回当前统计
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Timestamp: c.clock.Now(),
		Named:     c.named.stats(),
		Typed:     c.typed.stats(),
	}
}

func (k *kindCounters) stats() KindStats {
	return KindStats{
		Publishes:     k.publishes.Load(),
		Deliveries:    k.deliveries.Load(),
		Failures:      k.failures.Load(),
		Subscriptions: k.subscriptions.Load(),
		PublishRate:   k.rate.Rate(),
	}
}
