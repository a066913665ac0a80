// Package buildinfo 提供构建时注入的版本信息
//
// 所有变量都可以通过 -ldflags 覆盖：
//
//	go build -ldflags "\
//	  -X github.com/zapdaz/go-zapdaz/internal/app/buildinfo.Version=1.2.3 \
//	  -X github.com/zapdaz/go-zapdaz/internal/app/buildinfo.BuildTimeBuster=20240101_120000"
//
// 未注入时使用回退值。
package buildinfo

import "fmt"

// 回退值
const (
	DefaultAppName         = "app-name-not-baked-in"
	DefaultAppAuthor       = "Michael Prescott"
	DefaultVersion         = "0.0.0"
	DefaultBuildTime       = "January 1, 0000, 00:00:00 am"
	DefaultBuildTimeBuster = "00000000_000000"
	DefaultReleaseBranch   = "dev"
)

// 构建信息（通过 ldflags 注入）
var (
	// AppName 应用名称
	AppName string

	// AppAuthor 作者
	AppAuthor string

	// Version 版本号
	Version string

	// BuildTime 人类可读的构建时间
	BuildTime string

	// BuildTimeBuster 紧凑格式的构建时间，用于缓存失效参数
	BuildTimeBuster string

	// ReleaseBranch 发布分支
	ReleaseBranch string
)

// Info 构建信息快照
type Info struct {
	AppName         string `json:"appName"`
	AppAuthor       string `json:"appAuthor"`
	Version         string `json:"version"`
	BuildTime       string `json:"buildTime"`
	BuildTimeBuster string `json:"buildTimeBuster"`
	ReleaseBranch   string `json:"releaseBranch"`
}

// Get 返回应用回退值后的构建信息
func Get() Info {
	return Info{
		AppName:         orDefault(AppName, DefaultAppName),
		AppAuthor:       orDefault(AppAuthor, DefaultAppAuthor),
		Version:         orDefault(Version, DefaultVersion),
		BuildTime:       orDefault(BuildTime, DefaultBuildTime),
		BuildTimeBuster: orDefault(BuildTimeBuster, DefaultBuildTimeBuster),
		ReleaseBranch:   orDefault(ReleaseBranch, DefaultReleaseBranch),
	}
}

// Tag 返回 v<version>_b<buster> 形式的构建标签
func Tag() string {
	return Get().Tag()
}

// Tag 返回 v<version>_b<buster> 形式的构建标签
func (i Info) Tag() string {
	return fmt.Sprintf("v%s_b%s", i.Version, i.BuildTimeBuster)
}

// String 返回完整版本信息字符串
func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s, built %s)", i.AppName, i.Tag(), i.ReleaseBranch, i.BuildTime)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
