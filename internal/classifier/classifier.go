// Package classifier 提供单行分类与按行计数能力。
//
// 分类规则是纯前缀启发式：只看一行开头（允许前导空格/制表符）是否为 // 或 /*，
// 不维护跨行的块注释状态。块注释内部不以标记开头的行会被计为代码。
package classifier

import (
	"strings"

	"linecounter/internal/model"
)

// Kind 是单行的分类结果。
type Kind int

const (
	// Code 表示代码行。
	Code Kind = iota
	// Blank 表示去除首尾空白后为空的行。
	Blank
	// Comment 表示以 // 或 /* 开头的行。
	Comment
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	default:
		return "code"
	}
}

// Classify 判断单行属于空行、注释行还是代码行。
func Classify(line string) Kind {
	if strings.TrimSpace(line) == "" {
		return Blank
	}

	rest := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(rest, "//") || strings.HasPrefix(rest, "/*") {
		return Comment
	}
	return Code
}

// apply 把分类结果累加到统计值上，每次调用恰好 +1 行。
func apply(count *model.LineCount, kind Kind) {
	switch kind {
	case Blank:
		count.Blank++
	case Comment:
		count.Comment++
	default:
		count.Code++
	}
}
