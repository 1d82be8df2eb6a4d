package cmd

import "github.com/spf13/cobra"

// applyVersion 为根命令启用 --version。
// 命令示例：linecounter --version
func applyVersion(cmd *cobra.Command, version string) {
	cmd.Version = version
	cmd.SetVersionTemplate("linecounter version {{.Version}}\n")
}
