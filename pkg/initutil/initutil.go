package initutil

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"circuit_tool/pkg/circuit"
	"circuit_tool/pkg/logutil"
	"circuit_tool/pkg/pointset"
	"circuit_tool/pkg/report"
	"circuit_tool/pkg/toolutil"
)

// DefaultConfigFile 没有指定 -c 时在当前目录查找的配置文件，不存在就用默认值
const DefaultConfigFile = "circuits.ini"

// Config 求解配置，命令行参数优先于配置文件
type Config struct {
	ConfigPath string
	Bound      int
	Format     report.Format
	InputKind  pointset.Kind
}

func NewConfig() Config {
	return Config{
		Bound:     circuit.DefaultBound,
		Format:    report.FormatPlain,
		InputKind: pointset.KindLines,
	}
}

var (
	globalConfig = NewConfig()
	once         sync.Once
	initErr      error
)

// extractStringConfig 提取 key=value; 形式的值，# 开头的行忽略
func extractStringConfig(conf, key, defaultVal string) string {
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(key) + `\s*=\s*([^;\r\n]*)`)
	match := re.FindStringSubmatch(conf)
	if len(match) < 2 {
		return defaultVal
	}
	val := strings.TrimSpace(match[1])
	if val == "" {
		return defaultVal
	}
	return val
}

// extractIntConfig 同上，解析失败使用默认值
func extractIntConfig(conf, key string, defaultVal int) int {
	val := extractStringConfig(conf, key, "")
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		logutil.Warn("配置项 %s=%s 不是整数，使用默认值 %d", key, val, defaultVal)
		return defaultVal
	}
	return n
}

// ParseConfig 从配置文本解析，缺省项使用 base 中的值
func ParseConfig(conf string, base Config) (Config, error) {
	cfg := base
	cfg.Bound = extractIntConfig(conf, "bound", base.Bound)
	if cfg.Bound < 0 {
		return cfg, fmt.Errorf("bound 不能为负数: %d", cfg.Bound)
	}
	if err := cfg.Format.Set(extractStringConfig(conf, "format", string(base.Format))); err != nil {
		return cfg, err
	}
	if err := cfg.InputKind.Set(extractStringConfig(conf, "input_kind", string(base.InputKind))); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig 读取配置文件。
// path 为空时尝试 DefaultConfigFile，文件不存在不算错误；显式指定的文件必须存在。
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	lines, err := toolutil.ReadFileToLines(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			logutil.Debug("没有配置文件 %s，使用默认配置", path)
			return NewConfig(), nil
		}
		return NewConfig(), err
	}

	cfg, err := ParseConfig(strings.Join(lines, "\n"), NewConfig())
	if err != nil {
		return cfg, fmt.Errorf("配置文件 %s 有误: %w", path, err)
	}
	cfg.ConfigPath = path
	return cfg, nil
}

// InitSystem 初始化日志并加载配置，只执行一次
func InitSystem(logFileName string, logLevel logutil.LogLevel, configPath string) error {
	once.Do(func() {
		if initErr = logutil.InitLogger(logFileName, logLevel); initErr != nil {
			return
		}

		globalConfig, initErr = LoadConfig(configPath)
		if initErr != nil {
			logutil.Error("加载配置失败: %v", initErr)
			return
		}
		logutil.Info("globalConfig: %+v", globalConfig)
	})
	return initErr
}

// GetConfig 获取全局配置
func GetConfig() Config {
	return globalConfig
}
