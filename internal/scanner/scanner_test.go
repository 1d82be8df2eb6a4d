package scanner

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"linecounter/internal/model"
	"linecounter/internal/resource"
)

// writeFixtureFile 是测试辅助函数，用于在临时目录快速落地测试文件。
func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestScanFile 验证单文件统计与行数不变式。
func TestScanFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "single.go")
	writeFixtureFile(t, filePath, strings.Join([]string{
		"package main",
		"// top comment",
		"",
		"func main() { x := 1 // inline }",
	}, "\n"))

	count, err := ScanFile(filePath, "single.go")
	require.NoError(t, err)
	require.Equal(t, model.LineCount{FileName: "single.go", Code: 2, Blank: 1, Comment: 1}, count)
	require.Equal(t, 4, count.Lines())
}

// TestScanFileDirectoryIsReadError 验证把目录当文件读取时返回 FileRead 错误与零计数。
func TestScanFileDirectoryIsReadError(t *testing.T) {
	dirPath := filepath.Join(t.TempDir(), "nested")
	require.NoError(t, os.Mkdir(dirPath, 0o755))

	count, err := ScanFile(dirPath, "nested")
	require.ErrorIs(t, err, model.ErrFileRead)
	require.Equal(t, "nested", count.FileName)
	require.Zero(t, count.Lines())
}

// TestScanFileMissing 验证文件在扫描前消失时同样按 FileRead 处理。
func TestScanFileMissing(t *testing.T) {
	_, err := ScanFile(filepath.Join(t.TempDir(), "gone.go"), "gone.go")
	require.ErrorIs(t, err, model.ErrFileRead)
	require.Contains(t, err.Error(), "gone.go")
}

// TestAggregate 验证总计等于各字段之和且不带文件名。
func TestAggregate(t *testing.T) {
	total := Aggregate([]model.LineCount{
		{FileName: "a", Code: 3, Blank: 1, Comment: 2},
		{FileName: "b", Code: 4, Blank: 0, Comment: 5},
	})
	require.Equal(t, model.LineCount{Code: 7, Blank: 1, Comment: 7}, total)
	require.Zero(t, Aggregate(nil).Lines())
}

// TestScanDirectoryContinuesAfterReadError 验证读取失败的条目不会中断后续文件扫描。
func TestScanDirectoryContinuesAfterReadError(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\nfunc main() {}\n")
	writeFixtureFile(t, filepath.Join(tempDir, "web", "app.js"), "const x = 1;\n")
	writeFixtureFile(t, filepath.Join(tempDir, "notes.txt"), "// note\n\n")

	input, err := resource.Resolve(tempDir, "")
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	result := NewService(logger).Scan(input)

	require.Len(t, result.Files, 3)
	require.Len(t, result.Errors, 1)
	require.Equal(t, "web", result.Errors[0].Path)
	require.Contains(t, logs.String(), "read failed")

	require.Equal(t, model.LineCount{Code: 2, Blank: 1, Comment: 1}, result.Total)
	require.Equal(t, 4, result.GrandTotal)
	require.Equal(t, tempDir, result.ScannedPath)

	rows := result.Rows()
	require.Len(t, rows, 4)
	for _, row := range rows[:3] {
		require.Equal(t, model.RowFile, row.Kind)
	}
	require.Equal(t, model.RowTotal, rows[3].Kind)
	require.Empty(t, rows[3].Count.FileName)
}

// TestScanIsIdempotent 验证对未修改的输入重复扫描得到相同结果。
func TestScanIsIdempotent(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "a.go"), "package a\n\n// doc\n")
	writeFixtureFile(t, filepath.Join(tempDir, "b.go"), "package b\n/* c */\n")

	service := NewService(nil)

	first, err := resource.Resolve(tempDir, "")
	require.NoError(t, err)
	second, err := resource.Resolve(tempDir, "")
	require.NoError(t, err)

	firstResult := service.Scan(first)
	secondResult := service.Scan(second)
	require.ElementsMatch(t, firstResult.Files, secondResult.Files)
	require.Equal(t, firstResult.Total, secondResult.Total)
}
