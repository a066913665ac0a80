package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WaitForSignal 等待退出信号
//
// 收到 SIGINT/SIGTERM 时返回该信号；ctx 结束时返回 nil。
func WaitForSignal(ctx context.Context) os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		return sig
	case <-ctx.Done():
		return nil
	}
}
