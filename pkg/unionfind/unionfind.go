package unionfind

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// ErrOutOfRange 元素编号不在 [0, n) 内
var ErrOutOfRange = errors.New("unionfind: element out of range")

// DisjointSet 固定大小的并查集，只做路径压缩，不按秩合并
type DisjointSet struct {
	parent []int
}

// Component 同一个根下的全部元素，Members 升序
type Component struct {
	Root    int
	Members []int
}

// New 初始化并查集，元素范围为 [0, n)，每个元素自成一个集合
func New(n int) *DisjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &DisjointSet{parent: parent}
}

// Len 元素个数
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

func (ds *DisjointSet) check(x int) {
	if x < 0 || x >= len(ds.parent) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, x, len(ds.parent)))
	}
}

// Find 查找元素所在集合的根节点。
// 第一遍找到根，第二遍把路径上所有节点直接挂到根上，结果和递归版本一致。
func (ds *DisjointSet) Find(x int) int {
	ds.check(x)

	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

// Union 把 a 所在集合的根挂到 b 所在集合的根下面。
// 顺序固定先找 a 再找 b，已在同一集合时相当于根指向自己。
func (ds *DisjointSet) Union(a, b int) {
	rootA := ds.Find(a)
	rootB := ds.Find(b)
	ds.parent[rootA] = rootB
}

// Connected 判断两个元素是否在同一个集合
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// Count 当前集合个数，等于 len(Components())，但不分配分组
func (ds *DisjointSet) Count() int {
	count := 0
	for i := range ds.parent {
		if ds.Find(i) == i {
			count++
		}
	}
	return count
}

// Components 按当前的根把所有元素分组，按根升序返回。
// 每次调用都重新计算，Union 之后旧的结果就失效了。
func (ds *DisjointSet) Components() []Component {
	groups := treemap.NewWithIntComparator()
	for i := range ds.parent {
		root := ds.Find(i)
		members, found := groups.Get(root)
		if !found {
			groups.Put(root, []int{i})
			continue
		}
		groups.Put(root, append(members.([]int), i))
	}

	result := make([]Component, 0, groups.Size())
	it := groups.Iterator()
	for it.Next() {
		result = append(result, Component{Root: it.Key().(int), Members: it.Value().([]int)})
	}
	return result
}
