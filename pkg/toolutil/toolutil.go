package toolutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ProjectPrefix 模块路径，-trimpath 编译时调用方文件以它开头
const ProjectPrefix = "circuit_tool/"

// projectRoot 源码所在目录，由本文件位置推出(pkg/toolutil 往上两级)
var projectRoot = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.ToSlash(filepath.Dir(filepath.Dir(filepath.Dir(file)))) + "/"
}()

// TrimToProjectPath 把调用方文件路径缩短成项目内相对路径，
// 源码目录叫什么都可以；不在项目里的文件只留文件名
func TrimToProjectPath(file string) string {
	path := filepath.ToSlash(file)

	if projectRoot != "/" && strings.HasPrefix(path, projectRoot) {
		return strings.TrimPrefix(path, projectRoot)
	}
	if strings.HasPrefix(path, ProjectPrefix) {
		return strings.TrimPrefix(path, ProjectPrefix)
	}
	return filepath.Base(path)
}

// ReadLines 从任意 Reader 中按行读取，自动处理不同操作系统的换行符
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("读取输入出错: %w", err)
	}
	return lines, nil
}

// 读取文件并返回按行拆分的字符串列表，适用于所有操作系统
func ReadFileToLines(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("无法打开文件 %s: %w", filePath, err)
	}

	// 使用 defer + 匿名函数捕获 file.Close() 错误
	var closeErr error
	defer func() {
		if cerr := file.Close(); cerr != nil {
			closeErr = fmt.Errorf("关闭文件 %s 失败: %w", filePath, cerr)
		}
	}()

	lines, readErr := ReadLines(file)
	if readErr != nil {
		readErr = fmt.Errorf("读取文件 %s 出错: %w", filePath, readErr)
	}

	if readErr != nil || closeErr != nil {
		return lines, errors.Join(readErr, closeErr)
	}

	return lines, nil
}
