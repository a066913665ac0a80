package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/zapdaz/go-zapdaz/config"
	"github.com/zapdaz/go-zapdaz/internal/core/broadcaster"
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_Lifecycle 测试启动激活、停止停用
func TestModule_Lifecycle(t *testing.T) {
	var registry *Registry
	var b pkgif.Broadcaster

	app := fxtest.New(t,
		broadcaster.Module(),
		Module(),
		fx.Populate(&registry, &b),
	)

	var phases []Phase
	_, err := broadcaster.SubscribeTo(b, func(ev LifecycleEvent) {
		if ev.CID == IndexCID {
			phases = append(phases, ev.Phase)
		}
	})
	require.NoError(t, err)

	app.RequireStart()
	assert.Equal(t, []string{"index", "example1", "example2"}, registry.Keys())
	for _, p := range registry.Pages() {
		assert.True(t, p.IsInitialized(), p.CID())
		assert.True(t, p.IsActivated(), p.CID())
	}

	app.RequireStop()
	for _, p := range registry.Pages() {
		assert.False(t, p.IsActivated(), p.CID())
	}

	assert.Equal(t, []Phase{PhaseInit, PhaseActivate, PhaseDeactivate}, phases)
}

// TestModule_ConfiguredPages 测试按配置挂载页面
func TestModule_ConfiguredPages(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Pages.Enabled = []string{"Example2"}

	var registry *Registry
	app := fxtest.New(t,
		fx.Supply(cfg),
		broadcaster.Module(),
		Module(),
		fx.Populate(&registry),
	)
	defer app.RequireStart().RequireStop()

	assert.Equal(t, []string{"example2"}, registry.Keys())
}

// TestProvideRegistry_UnknownPage 测试未知页面报错
func TestProvideRegistry_UnknownPage(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Pages.Enabled = []string{"Index", "Nope"}

	_, err := ProvideRegistry(Params{Broadcaster: broadcaster.New(), Config: cfg})
	assert.EqualError(t, err, `unknown page "Nope"`)
}
