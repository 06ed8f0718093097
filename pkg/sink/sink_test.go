package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileNames(t *testing.T) {
	start := time.Date(2026, 8, 27, 9, 30, 5, 0, time.UTC)
	assert.Equal(t, "system_monitoring-2026-08-27-09_30_05.txt", FileName(start))
	assert.Equal(t, "system_monitoring-test-2026-08-27-09_30_05.txt", TestFileName(start))
}

func TestWriteAppendsAndMirrors(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	s, err := New(dir, "report.txt", &console)
	require.NoError(t, err)

	require.NoError(t, s.Write("first\n"))
	require.NoError(t, s.Write("second\n"))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
	assert.Equal(t, "first\nsecond\n", console.String())
}

func TestWriteWithoutConsole(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "quiet.txt", nil)
	require.NoError(t, err)
	require.NoError(t, s.Write("only the file\n"))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "only the file\n", string(data))
}

func TestNewCreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs", "nested")
	s, err := New(dir, "r.txt", nil)
	require.NoError(t, err)
	require.NoError(t, s.Write("x"))
	_, err = os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestWriteSurfacesLogFailureButStillPrints(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	s, err := New(dir, "blocked", &console)
	require.NoError(t, err)

	// make the log path unopenable by turning it into a directory
	require.NoError(t, os.Mkdir(s.Path(), 0o755))

	err = s.Write("report body\n")
	require.Error(t, err)
	assert.Equal(t, "report body\n", console.String(), "console attempt must still happen")
}
