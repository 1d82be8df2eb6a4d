// Package report 提供 linecounter 的输出能力。
// 当前实现支持固定格式的控制台表格和 JSON 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"linecounter/internal/model"
)

const (
	// TotalLabel 是总计行的固定标签。
	TotalLabel = "合计"
	// GrandTotalLabel 是总行数行的固定标签。
	GrandTotalLabel = "总行数"
)

// PrintTable 使用表格展示扫描结果。
//
// 结构固定为：表头、文件行、合计行、总行数行，各段之间以分隔线隔开。
// 总行数一格横跨三个数值列。
func PrintTable(writer io.Writer, result model.ScanResult) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	tw.Style().Format.Header = text.FormatDefault
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 20, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 2, WidthMin: 10, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 3, WidthMin: 10, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 4, WidthMin: 10, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})

	tw.AppendHeader(table.Row{"fileName", "code", "blank", "comment"})

	for _, row := range result.Rows() {
		switch row.Kind {
		case model.RowFile:
			tw.AppendRow(countRow(row.Count.FileName, row.Count))
		case model.RowTotal:
			tw.AppendSeparator()
			tw.AppendRow(countRow(TotalLabel, row.Count))
			tw.AppendSeparator()

			lines := humanize.Comma(int64(row.Count.Lines()))
			tw.AppendRow(
				table.Row{GrandTotalLabel, lines, lines, lines},
				table.RowConfig{AutoMerge: true, AutoMergeAlign: text.AlignRight},
			)
		}
	}

	if _, err := fmt.Fprintln(writer, tw.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func countRow(label string, count model.LineCount) table.Row {
	return table.Row{
		label,
		humanize.Comma(int64(count.Code)),
		humanize.Comma(int64(count.Blank)),
		humanize.Comma(int64(count.Comment)),
	}
}

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ScanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 把与 PrintJSON 相同的内容写入 path，缺失的父目录会先创建。
func WriteJSONFile(path string, result model.ScanResult) (err error) {
	if directory := filepath.Dir(path); directory != "." {
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", closeErr)
		}
	}()

	return PrintJSON(file, result)
}
