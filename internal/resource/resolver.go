// Package resource 负责把用户输入的路径解析为待统计的文件列表。
package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dlclark/regexp2"

	"linecounter/internal/model"
)

// matchTimeout 限制单个文件名的排除匹配耗时，避免病态正则卡住整次运行。
const matchTimeout = time.Second

// Entry 是一个待扫描条目。
type Entry struct {
	// Name 用于报表展示，即条目自身的文件名。
	Name string
	// Path 是实际打开的路径。
	Path string
}

// Input 是解析后的输入资源。
type Input struct {
	Root    string
	IsDir   bool
	Entries []Entry
}

// Resolve 判断 path 是文件还是目录，并返回需要扫描的条目。
//
// 规则：
// - 路径不存在时返回 NotFound
// - 单文件直接返回，忽略 exclude
// - 目录只列出直接子条目（不递归），顺序为系统返回的顺序；子目录同样作为条目返回
// - exclude 非空时按正则查找语义（非整串匹配）过滤条目名
// - 目录无法读取或过滤后没有条目时返回 EmptyDirectory
func Resolve(path string, exclude string) (Input, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Input{}, model.NewError(model.KindNotFound, path, err)
	}

	if !info.IsDir() {
		return Input{
			Root:    path,
			Entries: []Entry{{Name: filepath.Base(path), Path: path}},
		}, nil
	}

	pattern, err := compileExclude(exclude)
	if err != nil {
		return Input{}, model.NewError(model.KindInvalidInput, exclude, err)
	}

	// 目录无法读取时按空目录处理。
	names, err := listNames(path)
	if err != nil {
		return Input{}, model.NewError(model.KindEmptyDirectory, path, err)
	}

	input := Input{Root: path, IsDir: true, Entries: make([]Entry, 0, len(names))}
	for _, name := range names {
		if pattern != nil && matches(pattern, name) {
			continue
		}
		input.Entries = append(input.Entries, Entry{Name: name, Path: filepath.Join(path, name)})
	}

	if len(input.Entries) == 0 {
		return Input{}, model.NewError(model.KindEmptyDirectory, path, nil)
	}
	return input, nil
}

// compileExclude 编译排除正则，空字符串表示不过滤。
func compileExclude(exclude string) (*regexp2.Regexp, error) {
	if exclude == "" {
		return nil, nil
	}

	pattern, err := regexp2.Compile(exclude, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile exclude pattern: %w", err)
	}
	pattern.MatchTimeout = matchTimeout
	return pattern, nil
}

// matches 在名称中查找匹配；匹配超时按未命中处理，条目保留。
func matches(pattern *regexp2.Regexp, name string) bool {
	ok, err := pattern.MatchString(name)
	return err == nil && ok
}

// listNames 按目录原始顺序读取直接子条目名称，不做排序。
func listNames(dir string) ([]string, error) {
	handle, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open directory: %w", err)
	}
	defer handle.Close()

	names, err := handle.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	return names, nil
}
