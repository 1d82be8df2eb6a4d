// Package model 定义 linecounter 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

// LineCount 表示单个文件（或总计）的行级统计值。
//
// 注意：
// - 每一行只会落入 Code/Blank/Comment 中的一个
// - 因此 Code + Blank + Comment 恒等于读取到的行数
// - 总计记录不带文件名
type LineCount struct {
	FileName string `json:"file_name,omitempty"`
	Code     int    `json:"code"`
	Blank    int    `json:"blank"`
	Comment  int    `json:"comment"`
}

// Lines 返回三类行数之和。
func (c LineCount) Lines() int {
	return c.Code + c.Blank + c.Comment
}

// Add 将另一个统计结果叠加到当前对象，文件名保持不变。
func (c *LineCount) Add(other LineCount) {
	c.Code += other.Code
	c.Blank += other.Blank
	c.Comment += other.Comment
}

// RowKind 区分报表中的文件行与总计行。
type RowKind int

const (
	// RowFile 表示单个文件的统计行。
	RowFile RowKind = iota
	// RowTotal 表示全部文件的总计行，每份报表恰好一行。
	RowTotal
)

// ReportRow 是报表中的一行。
type ReportRow struct {
	Kind  RowKind
	Count LineCount
}

// ScanError 记录单文件读取失败信息。
// 设计为“错误不阻断全量扫描”，失败文件仍保留已读取部分的统计值。
type ScanError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// ScanResult 是一次运行的完整输出模型。
type ScanResult struct {
	ScannedPath string      `json:"scanned_path"`
	Files       []LineCount `json:"files"`
	Total       LineCount   `json:"total"`
	GrandTotal  int         `json:"grand_total"`
	Errors      []ScanError `json:"errors"`
}

// Rows 按输入顺序返回文件行，最后追加一行总计。
func (r ScanResult) Rows() []ReportRow {
	rows := make([]ReportRow, 0, len(r.Files)+1)
	for _, item := range r.Files {
		rows = append(rows, ReportRow{Kind: RowFile, Count: item})
	}
	return append(rows, ReportRow{Kind: RowTotal, Count: r.Total})
}
