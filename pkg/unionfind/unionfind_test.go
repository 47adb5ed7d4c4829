package unionfind

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizes(components []Component) []int {
	out := make([]int, len(components))
	for i, c := range components {
		out[i] = len(c.Members)
	}
	return out
}

func TestUnionFind(t *testing.T) {
	uf := New(10)

	// 初始状态：每个元素独立
	if uf.Connected(1, 2) {
		t.Errorf("Expected 1 and 2 not connected")
	}
	assert.Equal(t, 10, uf.Count())

	uf.Union(1, 2)
	if !uf.Connected(1, 2) {
		t.Errorf("Expected 1 and 2 connected")
	}

	uf.Union(2, 3)
	if !uf.Connected(1, 3) {
		t.Errorf("Expected 1 and 3 connected")
	}

	uf.Union(4, 5)
	if uf.Connected(1, 4) {
		t.Errorf("Expected 1 and 4 not connected")
	}
	assert.Equal(t, 7, uf.Count())
}

func TestUnionAttachesFirstUnderSecond(t *testing.T) {
	uf := New(3)
	uf.Union(0, 1)
	assert.Equal(t, 1, uf.Find(0))

	uf.Union(2, 0)
	assert.Equal(t, 1, uf.Find(2), "root of a goes under root of b")

	// 已经连通时是空操作
	uf.Union(0, 2)
	assert.Equal(t, 1, uf.Find(0))
	assert.Equal(t, 1, uf.Count())
}

func TestFindCompressesWholePath(t *testing.T) {
	uf := New(5)
	// 链: 0 -> 1 -> 2 -> 3 -> 4
	uf.Union(0, 1)
	uf.Union(1, 2)
	uf.Union(2, 3)
	uf.Union(3, 4)

	// Union 中的 Find 已经压缩了一部分，这里手动拉长再验证
	uf.parent = []int{1, 2, 3, 4, 4}
	assert.Equal(t, 4, uf.Find(0))
	assert.Equal(t, []int{4, 4, 4, 4, 4}, uf.parent)
}

func TestComponentsExample(t *testing.T) {
	uf := New(5)
	uf.Union(0, 1)
	uf.Union(2, 3)
	uf.Union(1, 2)

	got := uf.Components()
	want := []Component{
		{Root: 3, Members: []int{0, 1, 2, 3}},
		{Root: 4, Members: []int{4}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Components mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{4, 1}, sizes(got))
	assert.Equal(t, len(got), uf.Count())
}

func TestOutOfRangePanics(t *testing.T) {
	uf := New(3)
	for _, x := range []int{-1, 3} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic for %d", x)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, ErrOutOfRange))
			}()
			uf.Find(x)
		}()
	}
	assert.Panics(t, func() { uf.Union(0, 7) })
}

func TestRandomisedPartition(t *testing.T) {
	const n = 60
	rng := rand.New(rand.NewPCG(42, 7))
	uf := New(n)

	for step := 0; step < 80; step++ {
		a, b := rng.IntN(n), rng.IntN(n)
		uf.Union(a, b)
		require.True(t, uf.Connected(a, b))

		for x := 0; x < n; x++ {
			root := uf.Find(x)
			require.Equal(t, root, uf.Find(root), "find must be idempotent")
		}

		// 分组必须覆盖全部元素且互不相交
		seen := make(map[int]bool, n)
		for _, c := range uf.Components() {
			for _, m := range c.Members {
				require.False(t, seen[m], "element %d in two components", m)
				seen[m] = true
				require.Equal(t, c.Root, uf.Find(m))
			}
		}
		require.Len(t, seen, n)
	}
}
