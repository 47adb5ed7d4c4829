package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"circuit_tool/pkg/pointset"
	"circuit_tool/pkg/toolutil"
)

// 示例数据: 20 个点，只连最近 10 条边时答案是 40，全部连通时答案是 25272
const (
	ExampleFile   = "example.txt"
	ExampleBound  = 10
	ExamplePhase1 = 40
	ExamplePhase2 = 25272
)

// FindGoModRoot 从 dir 开始向上寻找 go.mod 所在目录
func FindGoModRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("从 %s 向上没有找到 go.mod", dir)
		}
		dir = parent
	}
}

// FixturePath 返回项目根目录 testdata 下文件的绝对路径
func FixturePath(t *testing.T, name string) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("获取当前工作目录失败: %v", err)
	}
	root, err := FindGoModRoot(wd)
	if err != nil {
		t.Fatalf("找不到 go.mod 根目录: %v", err)
	}
	return filepath.Join(root, "testdata", name)
}

// LoadPoints 读取 testdata 下按行保存的点
func LoadPoints(t *testing.T, name string) []pointset.Point {
	t.Helper()
	lines, err := toolutil.ReadFileToLines(FixturePath(t, name))
	if err != nil {
		t.Fatalf("读取 %s 失败: %v", name, err)
	}
	points, err := pointset.ParseLines(lines)
	if err != nil {
		t.Fatalf("解析 %s 失败: %v", name, err)
	}
	return points
}

// ExamplePoints 示例数据
func ExamplePoints(t *testing.T) []pointset.Point {
	return LoadPoints(t, ExampleFile)
}

// FourPoints 两对相距为 1 的点，两对之间距离较远
func FourPoints() []pointset.Point {
	return []pointset.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 5, Y: 5, Z: 5}, {X: 6, Y: 5, Z: 5}}
}
