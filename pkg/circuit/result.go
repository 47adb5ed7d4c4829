package circuit

import (
	"circuit_tool/pkg/pointset"
	"circuit_tool/pkg/toolutil"
	"circuit_tool/pkg/unionfind"
)

// Result 一次完整求解的结果，供输出和导出使用
type Result struct {
	Points     int
	Edges      int
	Bound      int
	Phase1     int64
	Phase2     int64
	Retained   []pointset.Edge
	Remaining  int                   // Phase2 开始前剩余队列里的边数
	Drained    int                   // Phase2 实际弹出的边数
	LastEdge   *pointset.Edge        // 让全部连通的那条边，Phase1 已连通时为 nil
	Sizes      []int                 // Phase1 之后各分量大小，降序
	Largest    []unionfind.Component // Phase1 之后最大的三个分量
	Components int                   // Phase1 之后的分量个数
}

// Components Phase1 之后的分量，按大小降序；Phase1 未执行时为空
func (s *Solver) Components() []unionfind.Component {
	return toolutil.TakeSafe(toolutil.StreamOf(s.phase1Components), len(s.phase1Components)).ToSlice()
}

// LastEdge Phase2 最后合并的边
func (s *Solver) LastEdge() (pointset.Edge, bool) {
	if s.lastEdge == nil {
		return pointset.Edge{}, false
	}
	return *s.lastEdge, true
}

// Solve 依次执行两个阶段并汇总结果，任何一个阶段失败都直接返回错误
func Solve(points []pointset.Point, k int) (Result, error) {
	s := NewSolver(points, WithBound(k))

	phase1, err := s.Phase1()
	if err != nil {
		return Result{}, err
	}
	remaining := s.remainder.Len()

	phase2, err := s.Phase2()
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Points:     len(points),
		Edges:      pointset.EdgeCount(len(points)),
		Bound:      s.bound,
		Phase1:     phase1,
		Phase2:     phase2,
		Retained:   s.Retained(),
		Remaining:  remaining,
		Drained:    s.drained,
		Components: len(s.phase1Components),
		Largest:    toolutil.TakeSafe(toolutil.StreamOf(s.phase1Components), topComponents).ToSlice(),
	}
	res.Sizes = toolutil.Map(toolutil.StreamOf(s.phase1Components),
		func(c unionfind.Component) int { return len(c.Members) }).ToSlice()
	if e, ok := s.LastEdge(); ok {
		res.LastEdge = &e
	}
	return res, nil
}
