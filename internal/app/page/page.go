package page

import (
	"fmt"
	"sync/atomic"

	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
	"github.com/zapdaz/go-zapdaz/pkg/lib/log"
)

var logger = log.Logger("app/page")

// Phase 生命周期阶段
type Phase string

const (
	// PhaseInit 初始化
	PhaseInit Phase = "init"
	// PhaseActivate 激活
	PhaseActivate Phase = "activate"
	// PhaseDeactivate 停用
	PhaseDeactivate Phase = "deactivate"
)

// ChannelPrefix 生命周期命名通道前缀
const ChannelPrefix = "page."

// Channel 返回阶段对应的命名通道
func Channel(p Phase) string {
	return ChannelPrefix + string(p)
}

// LifecycleEvent 页面生命周期事件
type LifecycleEvent struct {
	CID   string
	Phase Phase
}

// String 返回事件描述
func (e LifecycleEvent) String() string {
	return fmt.Sprintf("%s.%s()", e.CID, e.Phase)
}

// ============================================================================
// Base 页面基础实现
// ============================================================================

// Base 页面基础实现，具体页面嵌入它
type Base struct {
	cid         string
	bus         pkgif.Broadcaster
	initialized atomic.Bool
	activated   atomic.Bool
}

// NewBase 创建页面基础实现
//
// bus 为 nil 时不发布生命周期事件。
func NewBase(cid string, bus pkgif.Broadcaster) *Base {
	return &Base{cid: cid, bus: bus}
}

// 确保 Base 实现 Page 接口
var _ pkgif.Page = (*Base)(nil)

// CID 返回组件标识
func (p *Base) CID() string { return p.cid }

// String 返回组件标识
func (p *Base) String() string { return p.cid }

// IsInitialized 是否已初始化
func (p *Base) IsInitialized() bool { return p.initialized.Load() }

// IsActivated 是否处于激活状态
func (p *Base) IsActivated() bool { return p.activated.Load() }

// Init 标记已初始化
func (p *Base) Init() bool {
	p.initialized.Store(true)
	p.emit(PhaseInit)
	return true
}

// Activate 标记已激活
func (p *Base) Activate() bool {
	p.activated.Store(true)
	p.emit(PhaseActivate)
	return true
}

// Deactivate 标记已停用，返回 false
func (p *Base) Deactivate() bool {
	p.activated.Store(false)
	p.emit(PhaseDeactivate)
	return false
}

// emit 发布生命周期事件
func (p *Base) emit(phase Phase) {
	logger.Debug("页面生命周期", "cid", p.cid, "phase", phase)
	if p.bus == nil {
		return
	}

	ev := LifecycleEvent{CID: p.cid, Phase: phase}
	if err := p.bus.PublishMessage(ev); err != nil {
		logger.Warn("发布生命周期事件失败", "cid", p.cid, "phase", phase, "error", err)
	}
	p.bus.Publish(Channel(phase), ev)
}
