package interfaces

// Page 页面生命周期接口
//
// 调用顺序通常为 Init → Activate → Deactivate，Activate 与 Deactivate
// 可以交替多次。
type Page interface {
	// CID 返回组件标识（例如 "Index"）
	CID() string

	// String 返回组件标识
	String() string

	// Init 执行激活前需要完成的准备，返回初始化状态
	Init() bool

	// Activate 激活页面，返回激活状态
	Activate() bool

	// Deactivate 停用页面并释放激活期间的资源，返回激活状态
	Deactivate() bool

	// IsInitialized 是否已初始化
	IsInitialized() bool

	// IsActivated 是否处于激活状态
	IsActivated() bool
}
