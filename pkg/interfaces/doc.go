// Package interfaces 定义 zapdaz 的公共接口
//
// 本包只包含接口与少量值类型，实现位于 internal/ 下：
//
// # Core Layer 接口
//
//   - broadcaster.go    - 事件广播器（Broadcaster、Subscription、Channel）
//     以及指标上报接口 BroadcastReporter
//
// # App Layer 接口
//
//   - page.go           - 页面生命周期（Init / Activate / Deactivate）
//
// # 依赖方向
//
//	App → Core
//
// 禁止反向依赖：广播器不感知页面，页面通过 Broadcaster 发布生命周期事件。
package interfaces
