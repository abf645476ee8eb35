// Package debug builds the console logger used by the command line tools.
package debug

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// NewLogger writes human readable lines to w. Each line names the package,
// file and line it was logged from.
func NewLogger(w io.Writer, level zerolog.Level, colorize bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !colorize,
		TimeFormat: "15:04:05.000",
	}
	return zerolog.New(out).
		Level(level).
		With().Timestamp().Logger().
		Hook(CallerHook{WithColor: colorize})
}

// skipFrames reads the unexported frame count set by Event.CallerSkipFrame.
func skipFrames(e *zerolog.Event) int {
	v := reflect.ValueOf(e).Elem()
	field := v.FieldByName("skipFrame")
	if field.IsValid() && field.CanInt() {
		return int(field.Int())
	}
	return 0
}

type CallerHook struct {
	WithColor bool
}

func (c CallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, file, line, ok := runtime.Caller(skipFrames(e) + 3)
	if !ok {
		return
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return
	}

	pkg, _ := PackageAndFunc(fn.Name())
	e.Str("caller", FormatCaller(pkg, file, line, c.WithColor))
}

// PackageAndFunc splits a runtime function name such as
// "github.com/x/y.(*T).M" into "github.com/x/y" and "(*T).M".
func PackageAndFunc(name string) (pkg, function string) {
	lastSlash := strings.LastIndexByte(name, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}

	firstDot := strings.IndexByte(name[lastSlash:], '.') + lastSlash
	if firstDot < lastSlash {
		return name, ""
	}

	return name[:firstDot], name[firstDot+1:]
}

func FormatCaller(pkg, path string, number int, colorize bool) string {
	p := fileName(path)
	if colorize {
		p = color.New(color.Bold).Sprint(p)
		num := color.New(color.FgHiRed, color.Bold).Sprintf("%d", number)
		sep := color.New(color.Faint).Sprint(":")

		return fmt.Sprintf("%s%s%s%s%s", pkg, sep, p, sep, num)
	}

	return fmt.Sprintf("%s:%s:%d", pkg, p, number)
}

func fileName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
