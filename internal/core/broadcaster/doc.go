// Package broadcaster 实现进程内事件广播器
//
// 广播器维护两张相互独立的注册表：
//   - eventLookup：字符串通道名 -> 有序回调列表
//   - messageHandlers：{消息类型, 回调} 的有序列表
//
// 发布是同步的：Publish / PublishMessage 在调用者的 goroutine 上，
// 按注册顺序依次调用匹配的回调，不排队、不缓冲、没有背压。
//
// # 快速开始
//
//	b := broadcaster.New()
//
//	// 字符串通道
//	sub, _ := b.Subscribe("page.ready", func(data any) {
//	    fmt.Println("ready:", data)
//	})
//	defer sub.Dispose()
//	b.Publish("page.ready", "index")
//
//	// 消息类型
//	type SceneLoaded struct{ Name string }
//	broadcaster.SubscribeTo(b, func(m SceneLoaded) { ... })
//	_ = b.PublishMessage(SceneLoaded{Name: "torus"})
//
//	// 一次性订阅
//	b.SubscribeOnce("page.ready", func(any) { ... })
//
// # 分发语义
//
//   - 每次发布先在读锁下取匹配回调的快照，释放锁后再逐个调用；
//     回调内可以重入订阅、取消订阅或再次发布。
//   - 分发过程中的取消订阅对下一次发布立即可见，本次分发仍按快照进行。
//   - SubscribeOnce 注册的是包装函数：先取消自身订阅，再调用原回调。
//   - 单个回调 panic 会被捕获为 SubscriberExecutionError 交给错误处理器，
//     不影响其余订阅者，也不会传播给发布者。
//
// # 类型匹配
//
// 消息类型按名义类型匹配：为 T 注册的回调接收 T 和 *T 实例；
// 为接口类型注册的回调接收所有实现了该接口的实例。
//
// # 并发安全
//
//   - 注册表：sync.RWMutex 保护
//   - Subscription 状态：atomic.Bool，Dispose 幂等
//   - 删除按条目指针身份进行，与位置无关
//
// # Fx 模块
//
//	app := fx.New(
//	    broadcaster.Module(),
//	    fx.Invoke(func(b pkgif.Broadcaster) { ... }),
//	)
package broadcaster
