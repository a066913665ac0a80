package page

import (
	"strings"

	"github.com/zapdaz/go-zapdaz/internal/app/buildinfo"
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// IndexCID Index 页面标识
const IndexCID = "Index"

// Index 入口页面
type Index struct {
	*Base
	info buildinfo.Info
}

// NewIndex 创建 Index 页面
func NewIndex(bus pkgif.Broadcaster) *Index {
	return &Index{
		Base: NewBase(IndexCID, bus),
		info: buildinfo.Get(),
	}
}

// Init 记录构建标签后初始化
func (p *Index) Init() bool {
	logger.Info(p.cid+" "+p.info.Tag(), "cid", p.cid)
	return p.Base.Init()
}

// BuildTag 返回 v<version>_b<buster>
func (p *Index) BuildTag() string {
	return p.info.Tag()
}

// VersionedHref 在链接上附加构建参数
func (p *Index) VersionedHref(href string) string {
	sep := "?"
	if strings.Contains(href, "?") {
		sep = "&"
	}
	return href + sep + "build=" + p.info.Tag()
}
