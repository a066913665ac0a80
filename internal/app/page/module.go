package page

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/zapdaz/go-zapdaz/config"
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params 页面模块依赖参数
type Params struct {
	fx.In

	Broadcaster pkgif.Broadcaster
	Config      *config.Config `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("page",
		fx.Provide(ProvideRegistry),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideRegistry 创建注册表并挂载配置中启用的页面
func ProvideRegistry(p Params) (*Registry, error) {
	cfg := config.DefaultPagesConfig()
	if p.Config != nil {
		cfg = p.Config.Pages
	}

	r := NewRegistry(cfg.Namespace)
	for _, cid := range cfg.Enabled {
		factory, ok := Builtin(cid)
		if !ok {
			return nil, fmt.Errorf("unknown page %q", cid)
		}
		r.Attach(factory(p.Broadcaster))
	}
	return r, nil
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC       fx.Lifecycle
	Registry *Registry
}

// registerLifecycle 启动时初始化并激活页面，停止时逆序停用
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			for _, p := range input.Registry.Pages() {
				if !p.IsInitialized() {
					p.Init()
				}
				p.Activate()
			}
			logger.Info("页面已激活", "namespace", input.Registry.Namespace(), "count", input.Registry.Len())
			return nil
		},
		OnStop: func(_ context.Context) error {
			pages := input.Registry.Pages()
			for i := len(pages) - 1; i >= 0; i-- {
				if pages[i].IsActivated() {
					pages[i].Deactivate()
				}
			}
			logger.Info("页面已停用", "namespace", input.Registry.Namespace())
			return nil
		},
	})
}
