package page

import (
	"slices"
	"sync"

	"github.com/zapdaz/go-zapdaz/internal/util/strutil"
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// Registry 页面注册表
type Registry struct {
	mu        sync.RWMutex
	namespace string
	pages     map[string]pkgif.Page
	order     []string
}

// NewRegistry 创建页面注册表
func NewRegistry(namespace string) *Registry {
	return &Registry{
		namespace: namespace,
		pages:     make(map[string]pkgif.Page),
	}
}

// Key 返回页面在注册表中的键
func Key(p pkgif.Page) string {
	return strutil.LowercaseFirstLetter(p.CID())
}

// Namespace 返回命名空间名称
func (r *Registry) Namespace() string {
	return r.namespace
}

// Attach 挂载页面
//
// 键已存在时保留原页面并返回 false。
func (r *Registry) Attach(p pkgif.Page) bool {
	key := Key(p)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pages[key]; ok {
		logger.Info(r.namespace+"."+key+" already has attached "+key, "cid", p.CID())
		return false
	}

	r.pages[key] = p
	r.order = append(r.order, key)
	logger.Debug("挂载页面", "namespace", r.namespace, "key", key, "cid", p.CID())
	return true
}

// Get 按键查找页面
func (r *Registry) Get(key string) (pkgif.Page, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pages[key]
	return p, ok
}

// Keys 按挂载顺序返回所有键
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// Pages 按挂载顺序返回所有页面
func (r *Registry) Pages() []pkgif.Page {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pkgif.Page, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.pages[key])
	}
	return out
}

// Len 返回页面数量
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
