package treeprinter

import (
	"fmt"
	"strings"
)

// Style 绘图字符风格
type Style int

const (
	StyleASCII   Style = 0
	StyleUnicode Style = 1
)

// Direction 决定哪个子节点画在上面
type Direction int

const (
	RightFirst Direction = 0 // 右子树在上，逆中序
	LeftFirst  Direction = 1 // 左子树在上，正中序
)

// Side 子节点方向
type Side int

const (
	Left Side = iota
	Right
)

const (
	nodeVisitFirst = iota
	nodeVisitReadyToPrint
	nodeVisitDone
)

const (
	branchUpper = 1
	branchLower = 0
	branchRoot  = -1
)

// TreePrinter 是通用打印器的配置结构，T 是节点标识（索引、指针等）
type TreePrinter[T any] struct {
	Root      T
	GetChild  func(T, Side) T // 获取左右子节点
	GetValue  func(T) string  // 获取节点值的字符串表示
	IsNil     func(T) bool    // 判断节点是否为空
	Style     Style
	Direction Direction
}

type glyphs struct {
	vert, upper, lower, root string
}

func glyphsFor(style Style) glyphs {
	if style == StyleUnicode {
		return glyphs{vert: "│", upper: "┌──>", lower: "└──>", root: "│── "}
	}
	return glyphs{vert: "|", upper: ".-->", lower: "'-->", root: "|-- "}
}

// PrintTreeGeneric 用显式栈横向打印二叉树，不会因为树很深而爆栈
func PrintTreeGeneric[T any](printer TreePrinter[T]) string {
	if printer.IsNil(printer.Root) {
		return "tree is empty\n"
	}

	g := glyphsFor(printer.Style)
	upperSide, lowerSide := Right, Left
	if printer.Direction == LeftFirst {
		upperSide, lowerSide = Left, Right
	}

	type stackEntry struct {
		node      T
		branchPos int
		pre       string
		upperEdge bool // 位于上侧外沿，前缀不需要画竖线
		lowerEdge bool
		state     int
	}

	indent := func(pre string, closed bool) string {
		if closed {
			return pre + "    "
		}
		return pre + g.vert + "   "
	}

	stack := []stackEntry{{node: printer.Root, branchPos: branchRoot, upperEdge: true, lowerEdge: true}}
	var b strings.Builder

	for len(stack) > 0 {
		idx := len(stack) - 1
		top := stack[idx]

		switch top.state {
		case nodeVisitFirst:
			stack[idx].state = nodeVisitReadyToPrint
			if child := printer.GetChild(top.node, upperSide); !printer.IsNil(child) {
				stack = append(stack, stackEntry{
					node:      child,
					branchPos: branchUpper,
					pre:       indent(top.pre, top.upperEdge),
					upperEdge: true,
				})
			}
		case nodeVisitReadyToPrint:
			stack[idx].state = nodeVisitDone
			val := printer.GetValue(top.node)
			switch top.branchPos {
			case branchUpper:
				fmt.Fprintf(&b, "%s%s%s\n", top.pre, g.upper, val)
			case branchLower:
				fmt.Fprintf(&b, "%s%s%s\n", top.pre, g.lower, val)
			default:
				fmt.Fprintf(&b, "%s%s\n", g.root, val)
			}
		case nodeVisitDone:
			stack = stack[:idx]
			if child := printer.GetChild(top.node, lowerSide); !printer.IsNil(child) {
				stack = append(stack, stackEntry{
					node:      child,
					branchPos: branchLower,
					pre:       indent(top.pre, top.lowerEdge),
					lowerEdge: true,
				})
			}
		}
	}

	return b.String()
}
