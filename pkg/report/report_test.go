package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"circuit_tool/internal/testutils"
	"circuit_tool/pkg/circuit"
)

func solveFour(t *testing.T) circuit.Result {
	t.Helper()
	res, err := circuit.Solve(testutils.FourPoints(), 1)
	require.NoError(t, err)
	return res
}

func TestHistogram(t *testing.T) {
	got := Histogram([]int{5, 1, 2, 1, 5, 1})
	want := []Bucket{{Size: 1, Count: 3}, {Size: 2, Count: 1}, {Size: 5, Count: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Histogram mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, Histogram(nil))
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, solveFour(t), testutils.FourPoints(), FormatPlain))
	assert.Equal(t, "2\n5\n", buf.String())
}

func TestRenderTxt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, solveFour(t), testutils.FourPoints(), FormatTxt))
	out := buf.String()
	t.Logf("txt output:\n%s", out)

	lines := strings.Split(out, "\n")
	// 所有值从同一显示列开始
	assert.True(t, strings.HasPrefix(lines[0], "点数"))
	assert.Contains(t, out, "Phase2 最后一条边  1,0,0 - 5,5,5\n")
	assert.Contains(t, out, "Phase1             2\n")
	assert.Contains(t, out, "     1 x 2\n")
	assert.Contains(t, out, "     2 x 1\n")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, solveFour(t), testutils.FourPoints(), FormatJSON))
	out := buf.String()

	require.True(t, gjson.Valid(out), "invalid json:\n%s", out)
	assert.Equal(t, int64(2), gjson.Get(out, "phase1.answer").Int())
	assert.Equal(t, int64(5), gjson.Get(out, "phase2.answer").Int())
	assert.Equal(t, `[2,1,1]`, gjson.Get(out, "phase1.sizes|@ugly").Raw)
	assert.Equal(t, int64(3), gjson.Get(out, "phase1.largest.#").Int())
	assert.Equal(t, int64(66), gjson.Get(out, "phase2.last_edge.dist").Int())
	assert.Equal(t, int64(5), gjson.Get(out, "phase2.last_edge.to.0").Int())
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, solveFour(t), testutils.FourPoints(), Format("xml")))
	assert.Zero(t, buf.Len())
}

func TestFormatFlagValue(t *testing.T) {
	f := FormatPlain
	require.NoError(t, f.Set("json"))
	assert.Equal(t, FormatJSON, f)
	assert.Error(t, f.Set("yaml"))
	assert.Equal(t, []string{"plain", "txt", "json"}, f.Values())
}
