package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"linecounter/internal/model"
	"linecounter/internal/report"
	"linecounter/internal/resource"
	"linecounter/internal/scanner"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// countOptions 存放统计命令的可配置参数。
type countOptions struct {
	format  string
	output  string
	noColor bool
	verbose bool
}

// runCount 执行完整流程：校验参数 -> 解析输入 -> 扫描 -> 汇总 -> 输出。
// 致命的输入类错误只打印提示并正常结束，不作为命令错误返回。
func runCount(stdout io.Writer, stderr io.Writer, options countOptions, args []string) error {
	if options.noColor {
		color.NoColor = true
	}
	logger := newLogger(stderr, options.verbose)

	result, err := count(logger, &options, args)
	if err != nil {
		var typed *model.Error
		if errors.As(err, &typed) && typed.Kind.Fatal() {
			logger.Debug("run aborted", "kind", typed.Kind.String(), "error", err)
			return printDiagnostic(stdout, typed)
		}
		return err
	}

	if err := printWarnings(stdout, result.Errors); err != nil {
		return err
	}

	switch options.format {
	case formatJSON:
		if err := report.PrintJSON(stdout, result); err != nil {
			return err
		}
		if options.output == "" {
			return nil
		}
		if err := report.WriteJSONFile(options.output, result); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stdout, "\nJSON exported to %s\n", options.output)
		return nil
	default:
		return report.PrintTable(stdout, result)
	}
}

// count 负责检测阶段，只返回结果或带类别的错误，不做任何输出。
func count(logger *slog.Logger, options *countOptions, args []string) (model.ScanResult, error) {
	path, exclude, err := validateArgs(args)
	if err != nil {
		return model.ScanResult{}, err
	}

	options.format = strings.ToLower(strings.TrimSpace(options.format))
	if options.format != formatTable && options.format != formatJSON {
		return model.ScanResult{}, model.NewError(model.KindInvalidInput, "",
			fmt.Errorf("unsupported format %q, allowed values: table, json", options.format))
	}
	options.output = strings.TrimSpace(options.output)
	if options.output != "" && options.format != formatJSON {
		return model.ScanResult{}, model.NewError(model.KindInvalidInput, options.output,
			errors.New("--output requires --format json"))
	}

	input, err := resource.Resolve(path, exclude)
	if err != nil {
		return model.ScanResult{}, err
	}
	logger.Debug("input resolved", "path", input.Root, "dir", input.IsDir, "entries", len(input.Entries))

	return scanner.NewService(logger).Scan(input), nil
}

// validateArgs 校验位置参数个数：路径必填，排除正则可选。
func validateArgs(args []string) (string, string, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", "", model.NewError(model.KindInvalidInput, "",
			fmt.Errorf("expected 1 or 2 arguments, got %d", len(args)))
	}

	exclude := ""
	if len(args) == 2 {
		exclude = args[1]
	}
	return args[0], exclude, nil
}
