package page

import (
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

const (
	// Example1CID Example1 页面标识
	Example1CID = "Example1"
	// Example2CID Example2 页面标识
	Example2CID = "Example2"
)

// NewExample1 创建 Example1 页面
func NewExample1(bus pkgif.Broadcaster) pkgif.Page {
	return NewBase(Example1CID, bus)
}

// NewExample2 创建 Example2 页面
func NewExample2(bus pkgif.Broadcaster) pkgif.Page {
	return NewBase(Example2CID, bus)
}

// Factory 页面构造函数
type Factory func(bus pkgif.Broadcaster) pkgif.Page

// builtins 内置页面
var builtins = map[string]Factory{
	IndexCID:    func(bus pkgif.Broadcaster) pkgif.Page { return NewIndex(bus) },
	Example1CID: NewExample1,
	Example2CID: NewExample2,
}

// Builtin 按 CID 查找内置页面构造函数
func Builtin(cid string) (Factory, bool) {
	f, ok := builtins[cid]
	return f, ok
}
