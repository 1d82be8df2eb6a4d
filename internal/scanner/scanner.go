// Package scanner 提供逐文件扫描与汇总能力。
// 该层负责按顺序读取解析后的条目、收集失败信息并计算总计，不负责分类规则细节。
package scanner

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"linecounter/internal/classifier"
	"linecounter/internal/model"
	"linecounter/internal/resource"
)

// Service 是扫描服务对象。
type Service struct {
	logger *slog.Logger
}

// NewService 创建扫描服务，logger 为空时丢弃日志。
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{logger: logger}
}

// Scan 依次扫描 input 中的每个条目。
//
// 单个文件读取失败不会中断整体扫描：失败文件保留已读取部分的统计值，
// 同时记录一条 ScanError，随后继续下一个文件。
func (s *Service) Scan(input resource.Input) model.ScanResult {
	result := model.ScanResult{
		ScannedPath: input.Root,
		Files:       make([]model.LineCount, 0, len(input.Entries)),
		Errors:      make([]model.ScanError, 0),
	}

	for _, entry := range input.Entries {
		s.logger.Debug("scan file", "path", entry.Path)

		count, err := ScanFile(entry.Path, entry.Name)
		if err != nil {
			s.logger.Warn("read failed, keeping partial counts",
				"path", entry.Path,
				"lines", count.Lines(),
				"error", err,
			)
			result.Errors = append(result.Errors, model.ScanError{
				Path:  entry.Name,
				Error: err.Error(),
			})
		}
		result.Files = append(result.Files, count)
	}

	result.Total = Aggregate(result.Files)
	result.GrandTotal = result.Total.Lines()

	s.logger.Debug("scan finished",
		"files", len(result.Files),
		"errors", len(result.Errors),
		"lines", result.GrandTotal,
	)
	return result
}

// ScanFile 读取单个文件并统计行数。
// 出错时返回已经累计的部分结果以及 FileRead 类别的错误。
func ScanFile(path string, name string) (model.LineCount, error) {
	count := model.LineCount{FileName: name}

	file, err := os.Open(path)
	if err != nil {
		return count, model.NewError(model.KindFileRead, name, fmt.Errorf("open file: %w", err))
	}
	defer file.Close()

	counted, err := classifier.Count(file)
	counted.FileName = name
	if err != nil {
		return counted, model.NewError(model.KindFileRead, name, fmt.Errorf("read file: %w", err))
	}
	return counted, nil
}

// Aggregate 对所有文件的三类行数分别求和，结果不带文件名。
func Aggregate(files []model.LineCount) model.LineCount {
	var total model.LineCount
	for _, item := range files {
		total.Add(item)
	}
	return total
}
