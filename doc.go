// Package zapdaz 提供进程内事件广播与页面生命周期编排
//
// zapdaz 的核心是 EventBroadcaster：同一进程内的组件通过命名通道或
// 消息类型通道发布、订阅事件，彼此不直接引用。
//
// # 核心概念
//
//   - App: 应用入口，持有 Fx 容器
//   - Broadcaster: 事件广播器，支持命名通道和消息类型通道
//   - Page: 带 Init/Activate/Deactivate 生命周期的页面组件
//   - Collector: 广播器的 Prometheus 指标
//
// # 快速开始
//
//	app, err := zapdaz.Start(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close()
//
//	b := app.Broadcaster()
//
//	// 命名通道
//	sub, _ := b.Subscribe("scene.loaded", func(data any) {
//	    fmt.Println("loaded", data)
//	})
//	b.Publish("scene.loaded", "klein")
//	sub.Dispose()
//
//	// 消息类型通道
//	zapdaz.SubscribeTo(b, func(ev SceneLoaded) { ... })
//	_ = b.PublishMessage(SceneLoaded{Name: "klein"})
//
// # 错误处理
//
// 通道参数无效时 Subscribe/SubscribeOnce/PublishMessage 同步返回
// *InvalidChannelError（errors.Is(err, ErrInvalidChannel) 为真）。
// 订阅者 panic 不会影响发布者和其他订阅者，失败以
// *SubscriberExecutionError 交给 WithSubscriberErrorHandler 设置的处理函数，
// 默认写错误日志。
//
// # 文件组织
//
//	zapdaz.go   App 生命周期
//	fx.go       Fx 应用组装
//	options.go  用户选项
//	types.go    公共类型别名
//	errors.go   公共错误
//	version.go  版本信息
package zapdaz
