package model

import "fmt"

// ErrorKind 是运行期可能出现的失败类别，集合是封闭的。
type ErrorKind int

const (
	// KindInvalidInput 表示命令行参数不合法。
	KindInvalidInput ErrorKind = iota + 1
	// KindNotFound 表示输入路径不存在。
	KindNotFound
	// KindEmptyDirectory 表示目录为空或全部条目被排除。
	KindEmptyDirectory
	// KindFileRead 表示单个文件读取失败，只影响该文件。
	KindFileRead
)

// String 返回类别名称，便于日志输出。
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNotFound:
		return "not found"
	case KindEmptyDirectory:
		return "empty directory"
	case KindFileRead:
		return "file read"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Fatal 表示该类别是否会终止整次运行。
func (k ErrorKind) Fatal() bool {
	return k != KindFileRead
}

// 各类别的哨兵值，配合 errors.Is 使用。
var (
	ErrInvalidInput   = &Error{Kind: KindInvalidInput}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrEmptyDirectory = &Error{Kind: KindEmptyDirectory}
	ErrFileRead       = &Error{Kind: KindFileRead}
)

// Error 是携带类别的错误。检测处只负责构造它，展示由命令层完成。
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

// NewError 创建一个带类别的错误。
func NewError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	message := e.Kind.String()
	if e.Path != "" {
		message = fmt.Sprintf("%s: %s", message, e.Path)
	}
	if e.Err != nil {
		message = fmt.Sprintf("%s: %v", message, e.Err)
	}
	return message
}

// Unwrap 返回底层原因。
func (e *Error) Unwrap() error {
	return e.Err
}

// Is 让同类别的错误互相匹配，哨兵值只比较 Kind。
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
