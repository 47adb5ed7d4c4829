package main

import (
	"fmt"
	"os"

	"circuit_tool/pkg/circuitcmd"
	"circuit_tool/pkg/errorutil"
	"circuit_tool/pkg/logutil"
)

func main() {
	if err := circuitcmd.RootCmd().Execute(); err != nil {
		msg, code := errorutil.FormatErrorAndCode(err)
		logutil.Error("命令执行失败: %v", err)
		fmt.Fprintln(os.Stderr, msg)
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(0)
}
