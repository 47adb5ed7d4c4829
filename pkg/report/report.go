package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/btree"
	"github.com/mattn/go-runewidth"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"circuit_tool/pkg/circuit"
	"circuit_tool/pkg/pointset"
)

// Format 输出格式
type Format string

const (
	FormatPlain Format = "plain" // 两行，只有答案
	FormatTxt   Format = "txt"   // 对齐的表格
	FormatJSON  Format = "json"
)

// 为了让 VarP 接收自定义类型，实现 pflag.Value 接口(String Set Type)即可
func (f *Format) String() string { return string(*f) }

func (f *Format) Set(val string) error {
	switch Format(val) {
	case FormatPlain, FormatTxt, FormatJSON:
		*f = Format(val)
		return nil
	default:
		return fmt.Errorf("无效的输出格式: %s", val)
	}
}

func (f *Format) Type() string { return "format" }

// 列出所有的合法值
func (Format) Values() []string {
	return []string{string(FormatPlain), string(FormatTxt), string(FormatJSON)}
}

// Bucket 直方图的一格：某个分量大小出现了几次
type Bucket struct {
	Size  int
	Count int
}

// Histogram 按分量大小升序统计
func Histogram(sizes []int) []Bucket {
	tr := btree.NewG(8, func(a, b Bucket) bool { return a.Size < b.Size })
	for _, size := range sizes {
		b, _ := tr.Get(Bucket{Size: size})
		tr.ReplaceOrInsert(Bucket{Size: size, Count: b.Count + 1})
	}

	out := make([]Bucket, 0, tr.Len())
	tr.Ascend(func(b Bucket) bool {
		out = append(out, b)
		return true
	})
	return out
}

// Render 按格式把结果写到 w
func Render(w io.Writer, res circuit.Result, points []pointset.Point, format Format) error {
	var out string
	var err error
	switch format {
	case FormatPlain, "":
		out = fmt.Sprintf("%d\n%d\n", res.Phase1, res.Phase2)
	case FormatTxt:
		out = renderTxt(res, points)
	case FormatJSON:
		out, err = renderJSON(res, points)
	default:
		err = fmt.Errorf("不支持的输出格式: %s", format)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

type row struct {
	key, value string
}

func lastEdgeText(res circuit.Result, points []pointset.Point) string {
	if res.LastEdge == nil {
		return "-"
	}
	return fmt.Sprintf("%v - %v", points[res.LastEdge.From], points[res.LastEdge.To])
}

// 中文标签按显示宽度对齐
func renderTxt(res circuit.Result, points []pointset.Point) string {
	rows := []row{
		{"点数", humanize.Comma(int64(res.Points))},
		{"边数", humanize.Comma(int64(res.Edges))},
		{"保留边数上限", humanize.Comma(int64(res.Bound))},
		{"剩余边数", humanize.Comma(int64(res.Remaining))},
		{"分量个数", humanize.Comma(int64(res.Components))},
		{"Phase1", fmt.Sprintf("%d", res.Phase1)},
		{"Phase2 合并边数", humanize.Comma(int64(res.Drained))},
		{"Phase2 最后一条边", lastEdgeText(res, points)},
		{"Phase2", fmt.Sprintf("%d", res.Phase2)},
	}

	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.key))
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(runewidth.FillRight(r.key, width))
		b.WriteString("  ")
		b.WriteString(r.value)
		b.WriteString("\n")
	}

	b.WriteString("分量大小分布:\n")
	for _, bucket := range Histogram(res.Sizes) {
		fmt.Fprintf(&b, "  %6d x %d\n", bucket.Size, bucket.Count)
	}
	return b.String()
}

func renderJSON(res circuit.Result, points []pointset.Point) (string, error) {
	doc := "{}"
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	set("points", res.Points)
	set("edges", res.Edges)
	set("bound", res.Bound)
	set("remaining", res.Remaining)
	set("components", res.Components)
	set("phase1.answer", res.Phase1)
	set("phase1.sizes", res.Sizes)
	for i, c := range res.Largest {
		set(fmt.Sprintf("phase1.largest.%d.root", i), c.Root)
		set(fmt.Sprintf("phase1.largest.%d.members", i), c.Members)
	}
	set("phase2.answer", res.Phase2)
	set("phase2.drained", res.Drained)
	if res.LastEdge != nil {
		from, to := points[res.LastEdge.From], points[res.LastEdge.To]
		set("phase2.last_edge.from", []int64{from.X, from.Y, from.Z})
		set("phase2.last_edge.to", []int64{to.X, to.Y, to.Z})
		set("phase2.last_edge.dist", res.LastEdge.Dist)
	}
	if err != nil {
		return "", fmt.Errorf("生成 JSON 失败: %w", err)
	}

	return string(pretty.PrettyOptions([]byte(doc), &pretty.Options{Indent: "    ", Width: 80})), nil
}
