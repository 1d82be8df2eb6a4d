// Package cmd 提供 linecounter 的命令行入口与流程编排。
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"linecounter/internal/model"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	return execute(newRootCmd(version))
}

// execute 运行命令，并把参数类的致命错误（含 flag 解析失败）转成提示输出。
func execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()

	var typed *model.Error
	if errors.As(err, &typed) && typed.Kind.Fatal() {
		return printDiagnostic(rootCmd.OutOrStdout(), typed)
	}
	return err
}

// newRootCmd 创建根命令。根命令本身即统计命令，flag 必须写在路径之前：
//
//	linecounter ./src
//	linecounter ./src '\.log$'
//	linecounter --format json --output result.json ./src
func newRootCmd(version string) *cobra.Command {
	options := countOptions{
		format: formatTable,
	}

	rootCmd := &cobra.Command{
		Use:   "linecounter [flags] <path> [excludeRegex]",
		Short: "统计文件或目录中的代码行、空行与注释行",
		Long: "linecounter 统计单个文件或目录下直接子文件的代码行、空行与注释行，\n" +
			"目录模式下可以用正则排除文件名命中的条目，最后输出逐文件明细与合计。",
		// 参数个数在 RunE 内校验，以便输出统一的提示信息。
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd.OutOrStdout(), cmd.ErrOrStderr(), options, args)
		},
	}

	applyVersion(rootCmd, version)

	// 第一个位置参数之后不再解析 flag，以 - 开头的排除正则（如 -old）按原样传入。
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.NewError(model.KindInvalidInput, "", err)
	})

	rootCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	rootCmd.Flags().StringVar(&options.output, "output", options.output, "导出 JSON 文件路径，仅可与 --format json 同用")
	rootCmd.Flags().BoolVar(&options.noColor, "no-color", false, "关闭彩色提示")
	rootCmd.Flags().BoolVar(&options.verbose, "verbose", false, "在 stderr 输出调试日志")

	return rootCmd
}
