// Command linecounter 统计文件或目录中的代码行、空行与注释行。
// 业务逻辑都在 cmd 与 internal 下，这里只注入版本号并处理退出码。
package main

import (
	"fmt"
	"os"

	"linecounter/cmd"
)

// version 在发布构建时通过 -ldflags "-X main.version=vX.Y.Z" 注入。
var version = "dev"

func main() {
	// 输入类错误已在 cmd 中打印提示并返回 nil，走到这里的只有输出失败。
	err := cmd.Execute(version)
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "linecounter: %v\n", err)
	os.Exit(1)
}
