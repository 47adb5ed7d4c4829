package graph

import (
	"fmt"
	"sort"

	"github.com/awalterschulze/gographviz"

	"circuit_tool/pkg/pointset"
)

// NodeName 点在 DOT 中的节点名
func NodeName(i int) string {
	return fmt.Sprintf("p%d", i)
}

// ForestGraph 把选中的边画成无向图，每个点都作为节点出现（包括孤立点）
func ForestGraph(name string, points []pointset.Point, edges []pointset.Edge) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return nil, err
	}
	if err := g.SetDir(false); err != nil {
		return nil, err
	}

	for i, p := range points {
		attrs := map[string]string{"label": fmt.Sprintf("%q", p.String())}
		if err := g.AddNode(name, NodeName(i), attrs); err != nil {
			return nil, fmt.Errorf("添加节点 %d 失败: %w", i, err)
		}
	}

	for _, e := range edges {
		attrs := map[string]string{"label": fmt.Sprintf("%q", fmt.Sprint(e.Dist))}
		if err := g.AddEdge(NodeName(e.From), NodeName(e.To), false, attrs); err != nil {
			return nil, fmt.Errorf("添加边 %d-%d 失败: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// ToAdjacencyMap 将 gographviz.Graph 转为邻接表，无向图两个方向都记录
func ToAdjacencyMap(g *gographviz.Graph) map[string][]string {
	adj := make(map[string][]string, len(g.Nodes.Nodes))
	for _, node := range g.Nodes.Nodes {
		adj[node.Name] = nil
	}
	for _, edge := range g.Edges.Edges {
		adj[edge.Src] = append(adj[edge.Src], edge.Dst)
		if !g.Directed {
			adj[edge.Dst] = append(adj[edge.Dst], edge.Src)
		}
	}
	for k := range adj {
		sort.Strings(adj[k])
	}
	return adj
}

// ConnectedComponents 用显式栈 DFS 求连通分量，每个分量内部和分量之间都排好序
func ConnectedComponents(adj map[string][]string) [][]string {
	nodes := make([]string, 0, len(adj))
	for n := range adj {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	visited := make(map[string]bool, len(adj))
	var result [][]string
	for _, start := range nodes {
		if visited[start] {
			continue
		}
		var comp []string
		stack := []string{start}
		visited[start] = true
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, top)
			for _, next := range adj[top] {
				if !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}
		sort.Strings(comp)
		result = append(result, comp)
	}
	return result
}
