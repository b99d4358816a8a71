// Package log provides named, leveled loggers for the renderer's outer
// layers. The tracing core never logs.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging verbosity threshold
type Level int

// Levels accepted by SetLevel, from most to least verbose
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.4s}]%{color:reset} %{message}`,
)

var (
	backend logging.LeveledBackend
	level   = Notice
)

// Logger is the subset of go-logging's API used by the renderer
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// New returns a logger tagged with module name
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to w, keeping the current level
func SetSink(w io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	logging.SetBackend(backend)
	SetLevel(level)
}

// SetLevel changes the verbosity of every logger
func SetLevel(l Level) {
	level = l
	backend.SetLevel(toLogging(l), "")
}

func toLogging(l Level) logging.Level {
	switch l {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stderr)
}
