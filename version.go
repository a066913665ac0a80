package zapdaz

import "github.com/zapdaz/go-zapdaz/internal/app/buildinfo"

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// BuildInfo 构建信息
type BuildInfo = buildinfo.Info

// Version 返回构建信息（通过 ldflags 注入，未注入时为回退值）
func Version() BuildInfo {
	return buildinfo.Get()
}

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	return buildinfo.Get().String()
}
