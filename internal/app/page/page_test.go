package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapdaz/go-zapdaz/internal/core/broadcaster"
)

// TestBase_Lifecycle 测试状态转换及返回值
func TestBase_Lifecycle(t *testing.T) {
	p := NewBase("Page", nil)

	assert.Equal(t, "Page", p.CID())
	assert.Equal(t, "Page", p.String())
	assert.False(t, p.IsInitialized())
	assert.False(t, p.IsActivated())

	assert.True(t, p.Init())
	assert.True(t, p.IsInitialized())

	assert.True(t, p.Activate())
	assert.True(t, p.IsActivated())

	assert.False(t, p.Deactivate())
	assert.False(t, p.IsActivated())
	assert.True(t, p.IsInitialized(), "停用不影响初始化状态")
}

// TestBase_PublishesTyped 测试按消息类型发布生命周期事件
func TestBase_PublishesTyped(t *testing.T) {
	b := broadcaster.New()
	var events []LifecycleEvent

	_, err := broadcaster.SubscribeTo(b, func(ev LifecycleEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)

	p := NewBase("Demo", b)
	p.Init()
	p.Activate()
	p.Deactivate()

	assert.Equal(t, []LifecycleEvent{
		{CID: "Demo", Phase: PhaseInit},
		{CID: "Demo", Phase: PhaseActivate},
		{CID: "Demo", Phase: PhaseDeactivate},
	}, events)
}

// TestBase_PublishesNamed 测试在 page.<phase> 通道发布
func TestBase_PublishesNamed(t *testing.T) {
	b := broadcaster.New()
	var got []string

	for _, phase := range []Phase{PhaseInit, PhaseActivate, PhaseDeactivate} {
		b.Subscribe(Channel(phase), func(data any) {
			got = append(got, data.(LifecycleEvent).String())
		})
	}

	p := NewExample1(b)
	p.Init()
	p.Activate()
	p.Deactivate()

	assert.Equal(t, []string{
		"Example1.init()",
		"Example1.activate()",
		"Example1.deactivate()",
	}, got)
}

// TestChannel 测试通道命名
func TestChannel(t *testing.T) {
	assert.Equal(t, "page.init", Channel(PhaseInit))
	assert.Equal(t, "page.activate", Channel(PhaseActivate))
	assert.Equal(t, "page.deactivate", Channel(PhaseDeactivate))
}

// TestIndex 测试 Index 页面
func TestIndex(t *testing.T) {
	b := broadcaster.New()
	inited := false
	b.Subscribe(Channel(PhaseInit), func(any) { inited = true })

	p := NewIndex(b)
	assert.Equal(t, "Index", p.CID())

	assert.True(t, p.Init())
	assert.True(t, p.IsInitialized())
	assert.True(t, inited)

	tag := p.BuildTag()
	assert.Regexp(t, `^v.+_b.+$`, tag)
	assert.Equal(t, "/app.html?build="+tag, p.VersionedHref("/app.html"))
	assert.Equal(t, "/app.html?x=1&build="+tag, p.VersionedHref("/app.html?x=1"))
}

// TestBuiltin 测试内置页面查找
func TestBuiltin(t *testing.T) {
	for _, cid := range []string{IndexCID, Example1CID, Example2CID} {
		f, ok := Builtin(cid)
		require.True(t, ok, cid)
		assert.Equal(t, cid, f(nil).CID())
	}

	_, ok := Builtin("Missing")
	assert.False(t, ok)
}
