package toolutil_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuit_tool/pkg/toolutil"
)

type Group struct {
	Root    int
	Members []int
}

func TestMapAndCount(t *testing.T) {
	s := toolutil.StreamOf([]int{1, 2, 3, 4})
	squared := toolutil.Map(s, func(x int) int64 { return int64(x * x) })
	assert.Equal(t, 4, squared.Count())
	assert.Equal(t, []int64{1, 4, 9, 16}, squared.ToSlice())

	assert.Equal(t, 0, toolutil.Map(toolutil.StreamOf([]int(nil)), func(x int) int { return x }).Count())
}

func TestProduct(t *testing.T) {
	tests := []struct {
		name  string
		input []int64
		want  int64
	}{
		{"empty is identity", nil, 1},
		{"single", []int64{7}, 7},
		{"three sizes", []int64{5, 4, 2}, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toolutil.Product(toolutil.StreamOf(tt.input)))
		})
	}
}

func TestTakeAndTakeSafe(t *testing.T) {
	src := []Group{{0, []int{0, 1}}, {2, []int{2}}, {3, []int{3}}}

	assert.Len(t, toolutil.Take(toolutil.StreamOf(src), 2).ToSlice(), 2)
	assert.Len(t, toolutil.Take(toolutil.StreamOf(src), 10).ToSlice(), 3)

	safe := toolutil.TakeSafe(toolutil.StreamOf(src), 1).ToSlice()
	require.Len(t, safe, 1)
	safe[0].Members[0] = 99
	assert.Equal(t, 0, src[0].Members[0], "TakeSafe must not share member slices")

	all := toolutil.TakeSafe(toolutil.StreamOf(src), 5).ToSlice()
	assert.Len(t, all, 3)
}

func TestReadFileToLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\r\n4,5,6\n"), 0o644))

	lines, err := toolutil.ReadFileToLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1,2,3", "4,5,6"}, lines)

	_, err = toolutil.ReadFileToLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	lines, err = toolutil.ReadLines(strings.NewReader("a\nb"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestTrimToProjectPath(t *testing.T) {
	// 源码目录不叫 circuit_tool 时也按实际位置缩短
	_, self, _, ok := runtime.Caller(0)
	require.True(t, ok)
	assert.Equal(t, "pkg/toolutil/stream_test.go", toolutil.TrimToProjectPath(self))

	// -trimpath 编译出的路径以模块路径开头
	assert.Equal(t, "pkg/heap/heap.go", toolutil.TrimToProjectPath("circuit_tool/pkg/heap/heap.go"))
	assert.Equal(t, "x.go", toolutil.TrimToProjectPath("/elsewhere/x.go"))
}
