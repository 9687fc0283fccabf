package stack

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/learnstructures/singly/internal/xstring"
)

type recordOptions struct {
	packagePath bool
	fileName    bool
	line        bool
	lambdas     bool
}

type recordOption func(opts *recordOptions)

func PackagePath(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packagePath = b
	}
}

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

func Lambda(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.lambdas = b
	}
}

type call struct {
	function uintptr
	file     string
	line     int
}

// Call captures the caller at given depth (0 means the caller of Call)
func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

// Record formats the call as `pkg/path/pkg.Struct.Func(file.go:line)`
func (c call) Record(opts ...recordOption) string {
	options := recordOptions{
		packagePath: true,
		fileName:    true,
		line:        true,
		lambdas:     true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	name := "unknown"
	if fn := runtime.FuncForPC(c.function); fn != nil {
		name = strings.ReplaceAll(fn.Name(), "[...]", "")
	}

	b := xstring.Buffer()
	defer b.Free()

	if i := strings.LastIndex(name, "/"); i > -1 {
		if options.packagePath {
			b.WriteString(name[:i+1])
		}
		name = name[i+1:]
	}
	split := strings.Split(name, ".")
	if !options.lambdas {
		for len(split) > 1 && isLambda(split[len(split)-1]) {
			split = split[:len(split)-1]
		}
	}
	b.WriteString(strings.Join(split, "."))

	if options.fileName {
		file := c.file
		if i := strings.LastIndex(file, "/"); i > -1 {
			file = file[i+1:]
		}
		b.WriteByte('(')
		b.WriteString(file)
		if options.line {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(c.line))
		}
		b.WriteByte(')')
	}

	return b.String()
}

func (c call) FunctionID() string {
	return c.Record(Lambda(false), FileName(false))
}

func isLambda(s string) bool {
	if !strings.HasPrefix(s, "func") {
		return false
	}
	_, err := strconv.Atoi(s[len("func"):])

	return err == nil
}

func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}
