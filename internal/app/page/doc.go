// Package page 实现页面生命周期与页面注册表
//
// 每个页面经历 Init → Activate → Deactivate。每次状态变化都会通过广播器
// 发布一条 LifecycleEvent 消息，同时在命名通道 page.<phase> 上发布：
//
//	b.Subscribe(page.Channel(page.PhaseActivate), func(data any) {
//	    ev := data.(page.LifecycleEvent)
//	    fmt.Println(ev.CID, "已激活")
//	})
//
//	broadcaster.SubscribeTo(b, func(ev page.LifecycleEvent) {
//	    fmt.Println(ev.CID, ev.Phase)
//	})
//
// Registry 按首字母小写的 CID 保存页面（Index → index），同一键只保留
// 第一个挂载的页面。
//
// 内置页面：
//   - Index：初始化时记录构建标签，提供 VersionedHref
//   - Example1、Example2：只包含基本生命周期
package page
