package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"

	"circuit_tool/pkg/toolutil"
)

// LogLevel 日志级别，实现了 pflag.Value 接口，可以直接给 cobra 的 VarP 使用
type LogLevel int

// 定义日志级别
const (
	DEBUG LogLevel = iota // 0
	INFO                  // 1
	WARN                  // 2
	ERROR                 // 3
)

var levelNames = [...]string{DEBUG: "DEBUG", INFO: "INFO", WARN: "WARN", ERROR: "ERROR"}

var (
	logger       *log.Logger
	logFile      *os.File
	once         sync.Once
	mu           sync.Mutex
	currentLevel = INFO // 默认日志级别
)

// ParseLogLevel 把字符串解析成日志级别，大小写不敏感
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for level, n := range levelNames {
		if n == name {
			return LogLevel(level), nil
		}
	}
	return INFO, fmt.Errorf("无效的日志级别: %q (可选 DEBUG/INFO/WARN/ERROR)", s)
}

func (l *LogLevel) String() string {
	if *l >= DEBUG && *l <= ERROR {
		return levelNames[*l]
	}
	return fmt.Sprintf("LogLevel(%d)", int(*l))
}

func (l *LogLevel) Set(val string) error {
	level, err := ParseLogLevel(val)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func (l *LogLevel) Type() string {
	return "loglevel"
}

// openOutput 打开日志目标，文件打不开时退回 stderr，不能和 stdout 上的结果混在一起
func openOutput(output string) (*os.File, error) {
	if output == "stdout" {
		return os.Stdout, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return os.Stderr, fmt.Errorf("无法创建日志文件 %s: %w", output, err)
	}
	return f, nil
}

// InitLogger 初始化日志，output 为 stdout 或文件路径(追加写)，只生效一次
func InitLogger(output string, level LogLevel) error {
	var err error
	once.Do(func() {
		logFile, err = openOutput(output)
		SetOutput(logFile)
		currentLevel = level
	})
	return err
}

// SetOutput 直接替换日志的输出目标，测试里用来捕获日志
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", log.LstdFlags)
}

// logMessage 记录日志，**仅输出符合当前级别的日志**
func logMessage(level LogLevel, msg string, args ...any) {
	if logger == nil {
		_ = InitLogger("stdout", INFO) // 默认输出到控制台
	}
	if level < currentLevel { // 值越小打印得越多
		return
	}

	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	formattedMsg := fmt.Sprintf(msg, args...)

	mu.Lock()
	defer mu.Unlock()
	logger.Printf("[%s:%d] %s", toolutil.TrimToProjectPath(file), line, formattedMsg)
}

// 设置日志级别
func SetLogLevel(level LogLevel) {
	currentLevel = level
}

// GetLogLevel 返回当前日志级别
func GetLogLevel() LogLevel {
	return currentLevel
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO] "+msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN] "+msg, args...)
}

// Error 记录 ERROR 日志，附带调用堆栈
func Error(msg string, args ...any) {
	size := 1024 // 初始缓冲区大小
	for {
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)

		if n < size {
			// 堆栈单独作为参数传入，避免堆栈里的 % 被当成格式符
			logMessage(ERROR, "[ERR] "+msg+"\n调用堆栈:\n%s", append(args, string(buf[:n]))...)
			return
		}

		// 扩展缓冲区大小，倍增策略
		size *= 2
	}
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG] "+msg, args...)
}

// 关闭日志文件（如果有的话）
func CloseLogger() error {
	if logFile != nil && logFile != os.Stdout && logFile != os.Stderr {
		return logFile.Close()
	}
	return nil
}
