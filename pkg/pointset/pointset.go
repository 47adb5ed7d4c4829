// Package pointset 三维整数点的表示、解析以及两两之间的边
package pointset

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"circuit_tool/pkg/toolutil"
)

// ErrBadPoint 输入中有无法解析的点
var ErrBadPoint = errors.New("pointset: bad point")

// Kind 输入格式
type Kind string

const (
	KindLines Kind = "lines" // 每行 x,y,z
	KindJSON  Kind = "json"  // [[x,y,z],...] 或 [{"x":..,"y":..,"z":..},...]
)

// 为了让 VarP 接收自定义类型，实现 pflag.Value 接口(String Set Type)即可
func (k *Kind) String() string { return string(*k) }

func (k *Kind) Set(val string) error {
	switch Kind(val) {
	case KindLines, KindJSON:
		*k = Kind(val)
		return nil
	default:
		return fmt.Errorf("无效的输入格式: %s", val)
	}
}

func (k *Kind) Type() string { return "kind" }

// Point 三维整数坐标，创建后只读
type Point struct {
	X, Y, Z int64
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// SquaredDistance 欧氏距离的平方，只用来比较大小
func SquaredDistance(a, b Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return dx*dx + dy*dy + dz*dz
}

// Edge 两个点下标组成的无序对，From < To
type Edge struct {
	From int
	To   int
	Dist int64
}

// EdgeCount n 个点两两组合的边数
func EdgeCount(n int) int {
	return n * (n - 1) / 2
}

// Pairs 按 i<j 的行优先顺序对每条边调用 yield，yield 返回 false 时提前结束
func Pairs(points []Point, yield func(Edge) bool) {
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if !yield(Edge{From: i, To: j, Dist: SquaredDistance(points[i], points[j])}) {
				return
			}
		}
	}
}

// ParseLine 解析 "x,y,z"
func ParseLine(line string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != 3 {
		return Point{}, fmt.Errorf("%w: %q 需要 3 个坐标", ErrBadPoint, line)
	}

	var coords [3]int64
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, line, err)
		}
		coords[i] = v
	}
	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ParseLines 逐行解析，空行跳过，错误带行号
func ParseLines(lines []string) ([]Point, error) {
	points := make([]Point, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: %w", i+1, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func jsonCoord(v gjson.Result, idx int, path string) (int64, error) {
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%w: 第 %d 个点的 %s 不是数字", ErrBadPoint, idx, path)
	}
	n, err := strconv.ParseInt(v.Raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: 第 %d 个点的 %s=%s 不是整数", ErrBadPoint, idx, path, v.Raw)
	}
	return n, nil
}

// ParseJSON 解析 JSON 数组，元素可以是 [x,y,z] 或者 {"x":..,"y":..,"z":..}
func ParseJSON(data string) ([]Point, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("%w: 不是合法的 JSON", ErrBadPoint)
	}
	root := gjson.Parse(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: JSON 顶层必须是数组", ErrBadPoint)
	}

	var points []Point
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		idx := int(key.Int())
		var fields [3]gjson.Result
		switch {
		case value.IsArray():
			items := value.Array()
			if len(items) != 3 {
				parseErr = fmt.Errorf("%w: 第 %d 个点需要 3 个坐标", ErrBadPoint, idx)
				return false
			}
			copy(fields[:], items)
		case value.IsObject():
			fields = [3]gjson.Result{value.Get("x"), value.Get("y"), value.Get("z")}
		default:
			parseErr = fmt.Errorf("%w: 第 %d 个点格式不支持", ErrBadPoint, idx)
			return false
		}

		var coords [3]int64
		for i, name := range []string{"x", "y", "z"} {
			v, err := jsonCoord(fields[i], idx, name)
			if err != nil {
				parseErr = err
				return false
			}
			coords[i] = v
		}
		points = append(points, Point{X: coords[0], Y: coords[1], Z: coords[2]})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return points, nil
}

// Read 从 Reader 读取全部点
func Read(r io.Reader, kind Kind) ([]Point, error) {
	switch kind {
	case KindJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("读取输入失败: %w", err)
		}
		return ParseJSON(string(data))
	case KindLines, "":
		lines, err := toolutil.ReadLines(r)
		if err != nil {
			return nil, err
		}
		return ParseLines(lines)
	default:
		return nil, fmt.Errorf("不支持的输入格式: %s", kind)
	}
}
