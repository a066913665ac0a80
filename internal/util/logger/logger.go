package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/zapdaz/go-zapdaz/config"
	"github.com/zapdaz/go-zapdaz/pkg/lib/log"
)

func init() {
	globalOutput = os.Stderr
}

// Setup 根据配置创建进程级 logger 并设为默认
//
// 之前创建的 LazyLogger 会在下一次日志调用时使用新的 handler。
func Setup(lc config.LogConfig) *slog.Logger {
	l := slog.New(newHandler(FromLogConfig(lc)))
	log.SetDefault(l)
	return l
}

// SetOutput 设置全局日志输出目标
//
// 所有由 Setup 创建的 handler 都通过 dynamicWriter 写出，
// 因此调用时机不受限制。
func SetOutput(w io.Writer) {
	globalOutputMu.Lock()
	globalOutput = w
	globalOutputMu.Unlock()
}
