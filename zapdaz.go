package zapdaz

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/multierr"

	"github.com/zapdaz/go-zapdaz/config"
	"github.com/zapdaz/go-zapdaz/internal/app/page"
	"github.com/zapdaz/go-zapdaz/internal/core/metrics"
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
	"github.com/zapdaz/go-zapdaz/pkg/lib/log"
)

var logger = log.Logger("zapdaz")

// ════════════════════════════════════════════════════════════════════════════
//                              应用状态
// ════════════════════════════════════════════════════════════════════════════

// AppState 应用状态
type AppState int

const (
	// StateIdle 空闲状态（已创建，未启动）
	StateIdle AppState = iota

	// StateStarting 启动中（Fx App 启动中）
	StateStarting

	// StateRunning 运行中
	StateRunning

	// StateStopping 停止中
	StateStopping

	// StateStopped 已停止
	StateStopped
)

// String 返回状态的字符串表示
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              App
// ════════════════════════════════════════════════════════════════════════════

// App zapdaz 应用
//
// App 持有 Fx 容器。广播器在 New 返回后即可使用，页面在 Start 时
// 初始化并激活，在 Stop 时停用。停止后的 App 不能再次启动。
type App struct {
	mu     sync.Mutex
	config *config.Config
	app    *fx.App
	state  AppState

	broadcaster pkgif.Broadcaster
	pages       *page.Registry
	collector   *metrics.Collector
}

// New 创建应用（不启动）
//
// 示例：
//
//	app, err := zapdaz.New(
//	    zapdaz.WithMetrics(false),
//	    zapdaz.WithPages("Index"),
//	)
func New(opts ...Option) (*App, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	a := &App{config: o.config}

	var err error
	a.app, err = buildFxApp(o, a)
	if err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}
	return a, nil
}

// Start 快捷启动函数
//
// 等价于 New() + Start()。
func Start(ctx context.Context, opts ...Option) (*App, error) {
	a, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := a.Start(ctx); err != nil {
		return nil, fmt.Errorf("start app: %w", err)
	}
	return a, nil
}

// Start 启动应用
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.state {
	case StateIdle:
	case StateStopping, StateStopped:
		return ErrAppClosed
	default:
		return ErrAlreadyStarted
	}

	a.state = StateStarting
	logger.Info("正在启动应用")

	startCtx, cancel := context.WithTimeout(ctx, a.config.App.StartTimeout.Duration())
	defer cancel()

	if err := a.app.Start(startCtx); err != nil {
		a.state = StateStopped
		logger.Error("应用启动失败", "error", err)
		return fmt.Errorf("start fx app: %w", err)
	}

	a.state = StateRunning
	logger.Info("应用已启动", "pages", a.pages.Keys())
	return nil
}

// Stop 停止应用
//
// 页面按挂载的逆序停用。停止后的 App 不能再次启动。
func (a *App) Stop(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.state {
	case StateRunning:
	case StateStopping, StateStopped:
		return ErrAppClosed
	default:
		return ErrNotStarted
	}

	a.state = StateStopping
	logger.Info("正在停止应用")

	stopCtx, cancel := context.WithTimeout(ctx, a.config.App.StopTimeout.Duration())
	defer cancel()

	err := a.app.Stop(stopCtx)
	a.state = StateStopped
	if err != nil {
		for _, e := range multierr.Errors(err) {
			logger.Error("停止钩子失败", "error", e)
		}
		return fmt.Errorf("stop fx app: %w", err)
	}
	logger.Info("应用已停止")
	return nil
}

// Close 停止应用并释放资源
//
// 未启动或已停止时什么也不做。
func (a *App) Close() error {
	if a.State() != StateRunning {
		a.mu.Lock()
		a.state = StateStopped
		a.mu.Unlock()
		return nil
	}
	if err := a.Stop(context.Background()); err != nil && !errors.Is(err, ErrAppClosed) {
		return err
	}
	return nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              组件访问
// ════════════════════════════════════════════════════════════════════════════

// State 返回当前状态
func (a *App) State() AppState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Config 返回生效的配置
func (a *App) Config() *config.Config {
	return a.config
}

// Broadcaster 返回事件广播器
func (a *App) Broadcaster() Broadcaster {
	return a.broadcaster
}

// Pages 返回页面注册表
func (a *App) Pages() *PageRegistry {
	return a.pages
}

// Metrics 返回指标收集器，未启用指标时为 nil
func (a *App) Metrics() *metrics.Collector {
	return a.collector
}
