package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"linecounter/internal/model"
)

const usageExample = "示例：linecounter <文件或目录路径> [目录模式下要排除的文件名正则]"

var diagnosticMessages = map[model.ErrorKind]string{
	model.KindInvalidInput:   "输入不正确，请重新输入。",
	model.KindNotFound:       "文件或目录不存在，请重新输入。",
	model.KindEmptyDirectory: "目录中没有可统计的文件，请重新输入。",
}

// printDiagnostic 输出致命错误对应的提示和用法示例。
func printDiagnostic(writer io.Writer, diagErr *model.Error) error {
	message, ok := diagnosticMessages[diagErr.Kind]
	if !ok {
		message = "输入无效，请重新输入。"
	}

	if _, err := color.New(color.FgRed).Fprintln(writer, message); err != nil {
		return err
	}

	// 参数类错误附带具体原因，例如非法正则或未知格式。
	if diagErr.Kind == model.KindInvalidInput && diagErr.Err != nil {
		if _, err := fmt.Fprintf(writer, "  %v\n", diagErr.Err); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(writer, usageExample)
	return err
}

// printWarnings 为每个读取失败的文件输出一行警告，扫描结果仍会继续输出。
func printWarnings(writer io.Writer, scanErrors []model.ScanError) error {
	warn := color.New(color.FgYellow)
	for _, item := range scanErrors {
		if _, err := warn.Fprintf(writer, "无法正常读取文件（%s），已保留读取到的部分统计。\n", item.Path); err != nil {
			return err
		}
	}
	return nil
}

// newLogger 创建写往 stderr 的文本日志；默认只输出 Error 级别。
func newLogger(writer io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}))
}
