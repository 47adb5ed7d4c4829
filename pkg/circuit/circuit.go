// Package circuit 把最近的点对逐步连起来，回答两个连通性问题：
//
//   - Phase1: 只连最近的 K 条边之后，最大的三个分量的大小之积
//   - Phase2: 继续按距离从小到大连边，直到全部连通，最后那条边两端 X 坐标之积
//
// 所有 O(n²) 条边只经过一个容量为 K 的堆筛选，落选的边进入剩余队列留给 Phase2，
// 不需要对全部边排序。
package circuit

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"circuit_tool/pkg/heap"
	"circuit_tool/pkg/logutil"
	"circuit_tool/pkg/pointset"
	"circuit_tool/pkg/toolutil"
	"circuit_tool/pkg/unionfind"
)

// DefaultBound Phase1 保留的最短边数
const DefaultBound = 1000

// 取最大的几个分量
const topComponents = 3

var (
	ErrTooFewPoints           = errors.New("circuit: too few points")
	ErrInsufficientComponents = errors.New("circuit: fewer than three components")
	ErrPrematureExhaustion    = errors.New("circuit: remaining edges exhausted before full connectivity")
)

// Option 配置 Solver
type Option func(*Solver)

// WithBound 设置 Phase1 保留的边数，0 表示全部保留
func WithBound(k int) Option {
	return func(s *Solver) {
		s.bound = k
	}
}

// Solver 一次求解的全部状态，不能并发使用，也不能复用到别的点集
type Solver struct {
	points []pointset.Point
	bound  int

	sets      *unionfind.DisjointSet
	remainder *heap.BoundedHeap[pointset.Edge] // 堆顶是剩余边里最短的
	retained  []pointset.Edge                  // Phase1 保留下来的边

	connected        bool // Phase1 的边已经连上
	phase1Done       bool
	phase1           int64
	phase1Err        error
	phase1Components []unionfind.Component // 按大小降序

	phase2Done bool
	phase2     int64
	phase2Err  error
	lastEdge   *pointset.Edge
	drained    int
}

// 按距离升序：堆顶是保留集合里最长的边，是新来短边时的淘汰对象
func byDistance(a, b pointset.Edge) int {
	return cmp.Compare(a.Dist, b.Dist)
}

// 反过来：堆顶是最短的边
func byDistanceReversed(a, b pointset.Edge) int {
	return cmp.Compare(b.Dist, a.Dist)
}

type sizedComponent struct {
	unionfind.Component
	size int
}

// 堆顶是最大的分量
func bySize(a, b sizedComponent) int {
	return cmp.Compare(a.size, b.size)
}

// NewSolver 创建求解器，points 在求解期间不能被修改
func NewSolver(points []pointset.Point, opts ...Option) *Solver {
	s := &Solver{
		points:    points,
		bound:     DefaultBound,
		sets:      unionfind.New(len(points)),
		remainder: heap.New(0, byDistanceReversed),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bound < 0 {
		s.bound = 0
	}
	return s
}

// Bound Phase1 使用的边数上限
func (s *Solver) Bound() int { return s.bound }

// connectClosest 生成全部边，容量 K 的堆留下最短的 K 条，
// 其余的全部进入剩余队列，然后把留下的边两端合并。只执行一次。
func (s *Solver) connectClosest() {
	if s.connected {
		return
	}
	s.connected = true

	closest := heap.New(s.bound, byDistance)
	pointset.Pairs(s.points, func(e pointset.Edge) bool {
		if discarded, ok := closest.Insert(e); ok {
			s.remainder.Insert(discarded)
		}
		return true
	})

	s.retained = closest.Unsorted()
	for _, e := range s.retained {
		s.sets.Union(e.From, e.To)
	}

	logutil.Debug("共 %s 条边，保留 %s 条，剩余 %s 条",
		humanize.Comma(int64(pointset.EdgeCount(len(s.points)))),
		humanize.Comma(int64(len(s.retained))),
		humanize.Comma(int64(s.remainder.Len())))
}

// Phase1 最近的 K 条边连上之后，最大三个分量大小的乘积。重复调用返回第一次的结果。
func (s *Solver) Phase1() (int64, error) {
	if s.phase1Done {
		return s.phase1, s.phase1Err
	}
	s.phase1Done = true
	s.phase1, s.phase1Err = s.runPhase1()
	return s.phase1, s.phase1Err
}

func (s *Solver) runPhase1() (int64, error) {
	if len(s.points) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(s.points))
	}
	s.connectClosest()

	largest := heap.New(0, bySize)
	for _, c := range s.sets.Components() {
		largest.Insert(sizedComponent{Component: c, size: len(c.Members)})
	}
	s.phase1Components = make([]unionfind.Component, 0, largest.Len())
	for largest.Len() > 0 {
		s.phase1Components = append(s.phase1Components, largest.Pop().Component)
	}

	if len(s.phase1Components) < topComponents {
		return 0, fmt.Errorf("%w: only %d", ErrInsufficientComponents, len(s.phase1Components))
	}

	top := toolutil.Map(toolutil.Take(toolutil.StreamOf(s.phase1Components), topComponents),
		func(c unionfind.Component) int64 { return int64(len(c.Members)) })
	result := toolutil.Product(top)
	logutil.Info("Phase1: 最大的 %d 个分量 %v，乘积 %d", topComponents, top.ToSlice(), result)
	return result, nil
}

// Phase2 从剩余队列里按距离从小到大继续合并，直到只剩一个分量，
// 返回最后那条边两端点 X 坐标的乘积；Phase1 已经全部连通时返回 0。
func (s *Solver) Phase2() (int64, error) {
	if s.phase2Done {
		return s.phase2, s.phase2Err
	}
	s.phase2Done = true
	s.phase2, s.phase2Err = s.runPhase2()
	return s.phase2, s.phase2Err
}

func (s *Solver) runPhase2() (int64, error) {
	// 先把 Phase1 的分量快照固定下来，它失败也不影响 Phase2
	if _, err := s.Phase1(); err != nil {
		logutil.Debug("Phase1 未得到结果: %v", err)
	}
	s.connectClosest()

	for s.sets.Count() > 1 {
		next, ok := s.remainder.TryPop()
		if !ok {
			return 0, fmt.Errorf("%w: %d components left", ErrPrematureExhaustion, s.sets.Count())
		}
		s.sets.Union(next.From, next.To)
		s.lastEdge = &next
		s.drained++
	}

	if s.lastEdge == nil {
		logutil.Info("Phase2: 保留的边已经全部连通")
		return 0, nil
	}

	from, to := s.points[s.lastEdge.From], s.points[s.lastEdge.To]
	result := from.X * to.X
	logutil.Info("Phase2: 又合并了 %s 条边，最后一条 %v - %v，结果 %d",
		humanize.Comma(int64(s.drained)), from, to, result)
	return result, nil
}

// Retained Phase1 保留下来的边（堆数组顺序）
func (s *Solver) Retained() []pointset.Edge {
	s.connectClosest()
	out := make([]pointset.Edge, len(s.retained))
	copy(out, s.retained)
	return out
}

// SolvePhase1 对 points 只连最近的 k 条边，返回最大三个分量大小之积
func SolvePhase1(points []pointset.Point, k int) (int64, error) {
	return NewSolver(points, WithBound(k)).Phase1()
}

// SolvePhase2 使用默认边数上限，返回最终连通那条边两端 X 坐标之积
func SolvePhase2(points []pointset.Point) (int64, error) {
	return NewSolver(points).Phase2()
}
