package logger

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"
)

// Logger adapts charmbracelet/log to the ports.Logger field-map interface.
// The CLI points it at stderr so stdout carries nothing but the command.
type Logger struct {
	base *log.Logger
}

// NewWithWriter creates a Logger writing to w, normally stderr. Verbose
// lowers the level to debug; otherwise only warnings and errors are shown.
func NewWithWriter(w io.Writer, verbose bool) *Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return &Logger{
		base: log.NewWithOptions(w, log.Options{
			Level:  level,
			Prefix: "aish",
		}),
	}
}

// Discard returns a logger that drops everything, handy in tests.
func Discard() *Logger {
	return NewWithWriter(io.Discard, false)
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug(msg, keyvals(fields)...)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.base.Info(msg, keyvals(fields)...)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn(msg, keyvals(fields)...)
}

func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	kv := keyvals(fields)
	if err != nil {
		kv = append([]interface{}{"err", err}, kv...)
	}
	l.base.Error(msg, kv...)
}

// keyvals flattens fields in key order so output is stable.
func keyvals(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	kv := make([]interface{}, 0, len(keys)*2)
	for _, key := range keys {
		kv = append(kv, key, fields[key])
	}
	return kv
}
