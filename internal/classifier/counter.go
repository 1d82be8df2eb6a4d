package classifier

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"linecounter/internal/model"
)

// Count 流式读取输入并逐行分类。
//
// 行结束符支持 \n、\r\n 以及单独的 \r（旧 Mac 格式）。
// 末尾没有换行符的最后一行同样计入；读取出错时返回已经累计的部分结果和该错误，
// 未结束的半行不计入。
func Count(reader io.Reader) (model.LineCount, error) {
	var count model.LineCount
	var line strings.Builder
	pending := false

	flush := func() {
		apply(&count, Classify(line.String()))
		line.Reset()
		pending = false
	}

	bufferedReader := bufio.NewReader(reader)
	for {
		current, err := bufferedReader.ReadByte()
		if errors.Is(err, io.EOF) {
			if pending {
				flush()
			}
			return count, nil
		}
		if err != nil {
			return count, err
		}

		switch current {
		case '\n':
			flush()
		case '\r':
			flush()
			// \r\n 视为一个行结束符；Peek 出错留给下一次 ReadByte 处理。
			if next, peekErr := bufferedReader.Peek(1); peekErr == nil && next[0] == '\n' {
				_, _ = bufferedReader.ReadByte()
			}
		default:
			line.WriteByte(current)
			pending = true
		}
	}
}
