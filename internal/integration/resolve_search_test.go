package integration

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/minigrep/internal/config"
	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/runner"
)

// Integration Tests - these drive the full flow from raw arguments and
// environment to printed lines, the same path the CLI takes.

func env(vars map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// grep resolves args against vars and runs the search, returning stdout.
func grep(t *testing.T, vars map[string]string, args ...string) (string, error) {
	t.Helper()
	cfg, err := config.Resolve(append([]string{"minigrep"}, args...), env(vars))
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	_, err = runner.Run(context.Background(), cfg, &out)
	return out.String(), err
}

func TestIntegration_SensitiveThenInsensitive(t *testing.T) {
	path := writeFile(t, "poem.txt", "Rust:\nsafe, fast, productive.\nPick three.\nDust tape.\nTrust me.\n")

	out, err := grep(t, nil, "duct", path)
	require.NoError(t, err)
	assert.Equal(t, "safe, fast, productive.\n", out)

	out, err = grep(t, map[string]string{config.EnvCaseInsensitive: "1"}, "rUsT", path)
	require.NoError(t, err)
	assert.Equal(t, "Rust:\nTrust me.\n", out)
}

func TestIntegration_UsageErrorBeforeAnyIO(t *testing.T) {
	// Given: only a query, and a file path that would fail to read
	out, err := grep(t, nil, "query-only")

	// Then: the usage error wins and nothing is printed
	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeMissingFilePath, mgerrors.GetCode(err))
	assert.Empty(t, out)
}

func TestIntegration_LargeFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	// Given: a file with many lines, every hundredth carrying a marker
	var sb strings.Builder
	want := 0
	for i := 0; i < 200000; i++ {
		if i%100 == 0 {
			fmt.Fprintf(&sb, "line %d NEEDLE\n", i)
			want++
		} else {
			fmt.Fprintf(&sb, "line %d hay\n", i)
		}
	}
	path := writeFile(t, "big.txt", sb.String())

	// When: searching case-insensitively
	out, err := grep(t, map[string]string{config.EnvCaseInsensitive: ""}, "needle", path)

	// Then: every marked line comes back, in order
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, want)
	assert.Equal(t, "line 0 NEEDLE", lines[0])
	assert.Equal(t, "line 199900 NEEDLE", lines[len(lines)-1])
}

func TestIntegration_OutputPreservesOriginalText(t *testing.T) {
	path := writeFile(t, "mixed.txt", "  Leading space\tand TAB\r\nÜber GROSS\r\nnothing\n")

	out, err := grep(t, map[string]string{config.EnvCaseInsensitive: "yes"}, "über", path)

	require.NoError(t, err)
	assert.Equal(t, "Über GROSS\n", out)

	out, err = grep(t, nil, "TAB", path)
	require.NoError(t, err)
	assert.Equal(t, "  Leading space\tand TAB\n", out)
}
