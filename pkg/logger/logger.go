package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

const (
	white  = "\033[0m"
	grey   = "\033[37m"
	blue   = "\033[34m"
	yellow = "\033[33m"
	red    = "\033[31m"
)

var levels = map[Level][2]string{
	LevelTrace: {grey, "TRCE"},
	LevelDebug: {grey, "DBUG"},
	LevelInfo:  {blue, "INFO"},
	LevelWarn:  {yellow, "WARN"},
	LevelError: {red, "EROR"},
	LevelFatal: {red, "FATL"},
}

func (lv Level) String() string {
	if l, ok := levels[lv]; ok {
		return l[1]
	}
	return "NORM"
}

var DefaultLogger = NewLogger(os.Stderr)

type Logger struct {
	lock  sync.Mutex
	log   *log.Logger
	buf   *bytes.Buffer
	level Level
	color bool
	exit  func(code int)
}

// NewLogger returns an info level logger writing to w. Colors are only used
// when w is a terminal.
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		log:   log.New(w, "", log.LstdFlags),
		buf:   new(bytes.Buffer),
		level: LevelInfo,
		color: isTerminal(w),
		exit:  os.Exit,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func (l *Logger) logInternal(level Level, format string, args ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if level < l.level {
		return
	}
	info := levels[level]
	l.buf.Reset()
	l.buf.WriteString("| ")
	if l.color {
		l.buf.WriteString(info[0])
	}
	l.buf.WriteString(info[1])
	if l.color {
		l.buf.WriteString(white)
	}
	l.buf.WriteString(" | ")
	fmt.Fprintf(l.buf, format, args...)
	l.log.Print(l.buf.String())
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logInternal(LevelTrace, format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logInternal(LevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logInternal(LevelInfo, format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logInternal(LevelWarn, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logInternal(LevelError, format, args...)
}

// Fatalf logs at fatal level and exits the process with status 1.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logInternal(LevelFatal, format, args...)
	l.exit(1)
}
