package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapdaz/go-zapdaz"
	"github.com/zapdaz/go-zapdaz/internal/app"
	"github.com/zapdaz/go-zapdaz/internal/app/buildinfo"
)

// newRunCommand 启动应用并等待退出信号
func (c *cli) newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the broadcaster and activate the configured pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := zapdaz.Start(ctx,
				zapdaz.WithConfig(c.cfg),
				zapdaz.WithFxDebug(c.fxDebug),
			)
			if err != nil {
				return err
			}

			cmdLogger.Info("zapdaz 已运行",
				"version", buildinfo.Tag(),
				"pages", a.Pages().Keys(),
				"metrics", c.cfg.Metrics.Enabled && c.cfg.Metrics.ListenAddr != "")

			if sig := app.WaitForSignal(ctx); sig != nil {
				cmdLogger.Info("收到信号，正在退出", "signal", sig.String())
			}

			// 信号到达后 ctx 可能已取消，停止使用新的上下文
			return a.Stop(context.Background())
		},
	}
}

// newVersionCommand 输出构建信息
func (c *cli) newVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := buildinfo.Get()
			if asJSON {
				return writeJSON(cmd, info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

// newConfigCommand 输出生效的配置
func (c *cli) newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := c.cfg.ToJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
