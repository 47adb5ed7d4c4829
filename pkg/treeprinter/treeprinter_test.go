package treeprinter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 用 1 起始的数组表示的完全二叉树
func arrayPrinter(values []int, style Style, dir Direction) TreePrinter[int] {
	return TreePrinter[int]{
		Root: 1,
		GetChild: func(i int, side Side) int {
			if side == Left {
				return 2 * i
			}
			return 2*i + 1
		},
		GetValue:  func(i int) string { return fmt.Sprintf("%d", values[i]) },
		IsNil:     func(i int) bool { return i >= len(values) },
		Style:     style,
		Direction: dir,
	}
}

func TestPrintTreeEmpty(t *testing.T) {
	out := PrintTreeGeneric(arrayPrinter([]int{0}, StyleASCII, RightFirst))
	assert.Equal(t, "tree is empty\n", out)
}

func TestPrintTreeRightFirstASCII(t *testing.T) {
	out := PrintTreeGeneric(arrayPrinter([]int{0, 10, 20, 30}, StyleASCII, RightFirst))
	want := strings.Join([]string{
		"    .-->30",
		"|-- 10",
		"    '-->20",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestPrintTreeLeftFirstUnicode(t *testing.T) {
	out := PrintTreeGeneric(arrayPrinter([]int{0, 10, 20, 30}, StyleUnicode, LeftFirst))
	want := strings.Join([]string{
		"    ┌──>20",
		"│── 10",
		"    └──>30",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestPrintTreeInnerPrefix(t *testing.T) {
	// 1 -> (2, 3), 2 -> (4, 5)
	out := PrintTreeGeneric(arrayPrinter([]int{0, 1, 2, 3, 4, 5}, StyleASCII, RightFirst))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"    .-->3",
		"|-- 1",
		"    |   .-->5",
		"    '-->2",
		"        '-->4",
	}, lines)
}
