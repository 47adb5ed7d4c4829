// Package heap 提供一个可以限定容量的泛型二叉堆。
//
// 同一个类型通过比较函数和容量组合出不同用途：
//   - 容量 k>0、按距离升序比较：堆顶是保留集合里最大的，淘汰它就得到"最小的 k 个"
//   - 容量 0、比较函数取反：普通的小顶优先队列
//   - 容量 0、按大小升序比较：普通的大顶优先队列
package heap

import (
	"errors"
	"fmt"
	"strings"

	"circuit_tool/pkg/treeprinter"
)

// ErrEmptyPop 对空堆执行 Pop/Peek，属于调用方违反约定
var ErrEmptyPop = errors.New("heap: pop from empty heap")

// BoundedHeap 数组实现的二叉堆，下标从 1 开始（0 号位置不用），
// 父节点 i/2，子节点 2i、2i+1。compare 认为"更大"的元素在堆顶。
type BoundedHeap[T any] struct {
	values  []T
	k       int // 0 表示不限容量
	compare func(a, b T) int
}

// New 创建堆，k 为容量上限（0 不限），compare 为三路比较函数
func New[T any](k int, compare func(a, b T) int) *BoundedHeap[T] {
	if k < 0 {
		panic(fmt.Sprintf("heap: negative capacity %d", k))
	}
	// 0 号位置占位
	return &BoundedHeap[T]{values: make([]T, 1), k: k, compare: compare}
}

func (h *BoundedHeap[T]) Len() int { return len(h.values) - 1 }

// Cap 返回容量上限，0 表示不限
func (h *BoundedHeap[T]) Cap() int { return h.k }

func (h *BoundedHeap[T]) better(i, j int) bool {
	return h.compare(h.values[i], h.values[j]) > 0
}

func (h *BoundedHeap[T]) swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}

func (h *BoundedHeap[T]) bubbleUp(child int) {
	for child > 1 && h.better(child, child/2) {
		h.swap(child, child/2)
		child /= 2
	}
}

// 两个子节点都比父节点好时，只有右孩子严格好于左孩子才走右边，平局走左边
func (h *BoundedHeap[T]) trickleDown(parent int) {
	size := len(h.values)
	for {
		left := parent * 2
		right := left + 1

		switch {
		case right < size && h.better(right, parent) && h.better(right, left):
			h.swap(right, parent)
			parent = right
		case left < size && h.better(left, parent):
			h.swap(left, parent)
			parent = left
		default:
			return
		}
	}
}

// Insert 插入元素。
// 堆未满时直接入堆，ok 为 false；
// 堆已满时一定会丢出一个元素：value 比堆顶小则顶替堆顶并丢出旧堆顶，否则原样丢出 value。
func (h *BoundedHeap[T]) Insert(value T) (discarded T, ok bool) {
	if h.k == 0 || h.Len() < h.k {
		h.values = append(h.values, value)
		h.bubbleUp(len(h.values) - 1)
		return discarded, false
	}

	if h.compare(value, h.values[1]) < 0 {
		discarded = h.values[1]
		h.values[1] = value
		h.trickleDown(1)
		return discarded, true
	}
	return value, true
}

// Pop 取出堆顶，空堆直接 panic
func (h *BoundedHeap[T]) Pop() T {
	result, ok := h.TryPop()
	if !ok {
		panic(ErrEmptyPop)
	}
	return result
}

// TryPop 取出堆顶，空堆返回 false
func (h *BoundedHeap[T]) TryPop() (T, bool) {
	var zero T
	if h.Len() == 0 {
		return zero, false
	}

	result := h.values[1]
	last := len(h.values) - 1
	h.values[1] = h.values[last]
	h.values[last] = zero // 释放引用
	h.values = h.values[:last]
	if h.Len() > 1 {
		h.trickleDown(1)
	}
	return result, true
}

// Peek 查看堆顶但不取出
func (h *BoundedHeap[T]) Peek() T {
	if h.Len() == 0 {
		panic(ErrEmptyPop)
	}
	return h.values[1]
}

// Unsorted 按堆数组顺序返回当前内容的拷贝，不排序
func (h *BoundedHeap[T]) Unsorted() []T {
	out := make([]T, h.Len())
	copy(out, h.values[1:])
	return out
}

// PrintTree 打印堆的树形结构以及底层数组，调试用
func (h *BoundedHeap[T]) PrintTree(format func(T) string, style treeprinter.Style, direction treeprinter.Direction) string {
	if h == nil || h.Len() == 0 {
		return "index_count=0\nheap_array=[]\n"
	}

	treeStr := treeprinter.PrintTreeGeneric(treeprinter.TreePrinter[int]{
		Root: 1,
		GetChild: func(i int, side treeprinter.Side) int {
			if side == treeprinter.Left {
				return 2 * i
			}
			return 2*i + 1
		},
		GetValue: func(i int) string {
			return fmt.Sprintf("%s(%d)", format(h.values[i]), i)
		},
		IsNil: func(i int) bool {
			return i >= len(h.values)
		},
		Style:     style,
		Direction: direction,
	})

	var b strings.Builder
	b.WriteString(treeStr)
	fmt.Fprintf(&b, "index_count=%d\n", h.Len())
	b.WriteString("heap_array=[")
	for i := 1; i < len(h.values); i++ {
		if i > 1 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "[%d]=%s", i, format(h.values[i]))
	}
	b.WriteString("]\n")

	return b.String()
}
