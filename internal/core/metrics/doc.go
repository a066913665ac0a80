// Package metrics 提供广播器的 Prometheus 指标
//
// Collector 实现 pkgif.BroadcastReporter，把订阅、取消、发布、投递和
// 订阅者失败记录到独立的 prometheus.Registry：
//
//	zapdaz_broadcaster_publish_total{kind}
//	zapdaz_broadcaster_deliveries_total{kind}
//	zapdaz_broadcaster_subscriber_failures_total{kind}
//	zapdaz_broadcaster_subscriptions{kind}
//
// kind 取值为 named 或 typed。
//
// # 快速开始
//
//	c := metrics.NewCollector("zapdaz")
//	b := broadcaster.New(broadcaster.WithReporter(c))
//
//	b.Publish("page.init", nil)
//	snap := c.Snapshot()
//	fmt.Println(snap.Named.Publishes)
//
//	http.Handle("/metrics", c.Handler())
//
// # 速率
//
// 每种通道的发布速率由 RateMeter 统计，使用 60 个 1 秒桶计算最近
// 60 秒的平均值。时钟可替换，测试中使用 clock.NewMock()。
//
// # Fx 模块
//
//	app := fx.New(
//	    metrics.Module,
//	    broadcaster.Module(),
//	)
//
// 配置 Metrics.Enabled 为 false 时模块不提供 Collector，广播器回退为
// 不上报。配置了 Metrics.ListenAddr 时模块在启动阶段开启 HTTP 服务。
//
// # 并发安全
//
// 所有方法都是并发安全的：
//   - prometheus 向量自带同步
//   - 快照计数使用原子操作
//   - RateMeter 内部加锁
package metrics
