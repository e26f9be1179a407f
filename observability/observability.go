package observability

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field    { return stringField{key, value} }
func Int(key string, value int) Field   { return intField{key, value} }
func Error(key string, err error) Field { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// TextLogger writes one line per event to an io.Writer. The CLIs use it;
// library code accepts the Logger interface and defaults to NopLogger.
type TextLogger struct {
	mu     sync.Mutex
	w      io.Writer
	bound  []Field
	MinLvl Level
}

// NewTextLogger returns a logger writing to w at Info level and above.
func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w, MinLvl: LevelInfo}
}

// Stderr returns a TextLogger bound to os.Stderr.
func Stderr() *TextLogger { return NewTextLogger(os.Stderr) }

func (l *TextLogger) log(lvl Level, name, msg string, fields []Field) {
	if lvl < l.MinLvl {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s", name, msg)
	for _, f := range l.bound {
		fmt.Fprintf(l.w, " %s=%v", f.Key(), f.Value())
	}
	for _, f := range fields {
		fmt.Fprintf(l.w, " %s=%v", f.Key(), f.Value())
	}
	fmt.Fprintln(l.w)
}

func (l *TextLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, "DEBUG", msg, fields) }
func (l *TextLogger) Info(msg string, fields ...Field)  { l.log(LevelInfo, "INFO", msg, fields) }
func (l *TextLogger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, "WARN", msg, fields) }
func (l *TextLogger) Error(msg string, fields ...Field) { l.log(LevelError, "ERROR", msg, fields) }

func (l *TextLogger) With(fields ...Field) Logger {
	bound := make([]Field, 0, len(l.bound)+len(fields))
	bound = append(bound, l.bound...)
	bound = append(bound, fields...)
	return &TextLogger{w: l.w, bound: bound, MinLvl: l.MinLvl}
}

// Standard metric names emitted by the library.
const (
	MetricBuildTime    = "doc.build.duration"
	MetricBlockCount   = "doc.blocks.count"
	MetricImageCount   = "doc.images.count"
	MetricPackageBytes = "doc.package.bytes"
	MetricWriteTime    = "doc.write.duration"
	MetricConvertTime  = "doc.convert.duration"
)
