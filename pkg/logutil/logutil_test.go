package logutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"DEBUG", DEBUG, false},
		{"info", INFO, false},
		{" Warn ", WARN, false},
		{"ERROR", ERROR, false},
		{"verbose", INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogLevelFlagValue(t *testing.T) {
	level := WARN
	assert.Equal(t, "WARN", level.String())
	assert.Equal(t, "loglevel", level.Type())

	require.NoError(t, level.Set("debug"))
	assert.Equal(t, DEBUG, level)

	assert.Error(t, level.Set("loud"))
	assert.Equal(t, DEBUG, level, "failed Set must keep the old value")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	old := GetLogLevel()
	defer SetLogLevel(old)

	SetLogLevel(WARN)
	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	Warn("shown %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 3")
	assert.Contains(t, out, "logutil_test.go:")
}

func TestErrorCarriesStack(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	old := GetLogLevel()
	defer SetLogLevel(old)

	SetLogLevel(DEBUG)
	Error("boom %s", "100%")

	out := buf.String()
	assert.Contains(t, out, "[ERR] boom 100%")
	assert.True(t, strings.Contains(out, "调用堆栈"), "stack header missing:\n%s", out)
	assert.Contains(t, out, "goroutine")
}

func TestOpenOutput(t *testing.T) {
	f, err := openOutput("stdout")
	require.NoError(t, err)
	assert.Same(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "circuits.log")
	f, err = openOutput(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Name())
	require.NoError(t, f.Close())

	// 目录不存在时退回 stderr，不能写到结果所在的 stdout
	f, err = openOutput(filepath.Join(t.TempDir(), "missing", "circuits.log"))
	assert.Error(t, err)
	assert.Same(t, os.Stderr, f)
}
