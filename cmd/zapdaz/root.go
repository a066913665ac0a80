package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zapdaz/go-zapdaz/config"
	"github.com/zapdaz/go-zapdaz/internal/app/buildinfo"
	"github.com/zapdaz/go-zapdaz/internal/util/logger"
	"github.com/zapdaz/go-zapdaz/pkg/lib/log"
)

var cmdLogger = log.Logger("zapdaz/cmd")

// cli 命令行共享状态
type cli struct {
	v          *viper.Viper
	configFile string
	logLevel   string
	fxDebug    bool

	cfg     *config.Config
	logFile *os.File
}

// newRootCommand 创建根命令
func newRootCommand() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:     "zapdaz",
		Short:   "In-process event broadcaster with page lifecycle",
		Version: buildinfo.Tag(),
		Long: `zapdaz runs an in-process event broadcaster and drives the built-in
pages through their init / activate / deactivate lifecycle, publishing
every transition on the broadcaster.

Configuration is read from an optional JSON/YAML/TOML file and from
ZAPDAZ_* environment variables (for example ZAPDAZ_METRICS_ENABLED=false).`,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file path")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().BoolVar(&c.fxDebug, "fx-debug", false, "print dependency injection events")
	root.SetVersionTemplate("zapdaz {{.Version}}\n")

	root.AddCommand(
		c.newRunCommand(),
		c.newVersionCommand(),
		c.newConfigCommand(),
	)
	return root
}

// setup 加载配置并初始化日志
func (c *cli) setup(_ *cobra.Command, _ []string) error {
	loadDotEnv()

	cfg, err := loadConfig(c.v, c.configFile)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		if !config.IsLogLevel(c.logLevel) {
			return fmt.Errorf("invalid log level %q", c.logLevel)
		}
		cfg.Log.Level = c.logLevel
	}
	c.cfg = cfg

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		c.logFile = f
		logger.SetOutput(f)
	}
	logger.Setup(cfg.Log)

	cmdLogger.Debug("配置已加载", "file", c.v.ConfigFileUsed())
	return nil
}

// teardown 关闭日志文件
func (c *cli) teardown(_ *cobra.Command, _ []string) error {
	if c.logFile == nil {
		return nil
	}
	logger.SetOutput(os.Stderr)
	err := c.logFile.Close()
	c.logFile = nil
	if err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}
