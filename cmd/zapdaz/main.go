// Package main 提供 zapdaz 命令行入口
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		_, _ = os.Stderr.WriteString("zapdaz: " + err.Error() + "\n")
		os.Exit(1)
	}
}
