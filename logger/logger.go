// Package logger is the leveled console log used by the keystore and the CLI. Lines carry
// the time, the calling file and line, and a one-letter level tag.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Log levels. Messages are written when the logger level is at least the message level.
const (
	LevelOff   uint8 = 0
	LevelInfo  uint8 = 1
	LevelDebug uint8 = 2
	LevelDev   uint8 = 3
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

type style struct {
	level  uint8
	tag    string
	color  string
	stderr bool
}

var (
	styleInfo  = style{LevelInfo, "I", "", false}
	styleWarn  = style{LevelInfo, "W", colorYellow, false}
	styleErr   = style{LevelInfo, "E", colorRed, true}
	styleDebug = style{LevelDebug, "D", colorCyan, false}
	styleDev   = style{LevelDev, "d", colorGreen, false}
	styleFatal = style{LevelOff, "F", colorRed, true}
)

var DiscardLog = NewWithWriter(io.Discard, LevelOff)

// New logs to the process's stdout and stderr, in color when stdout is a terminal.
func New() *Log {
	return &Log{
		level:  LevelInfo,
		stdout: os.Stdout,
		stderr: os.Stderr,
		color:  term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewWithWriter returns an uncolored logger that writes every level to w.
func NewWithWriter(w io.Writer, lvl uint8) *Log {
	return &Log{
		level:  lvl,
		stdout: w,
		stderr: w,
	}
}

type Log struct {
	mu     sync.Mutex
	level  uint8
	stdout io.Writer
	stderr io.Writer
	color  bool
}

func (l *Log) SetLogLevel(lvl uint8) {
	l.mu.Lock()
	l.level = lvl
	l.mu.Unlock()
}

func (l *Log) GetLogLevel() uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetStdout and SetStderr redirect output, e.g. through a readline prompt.
func (l *Log) SetStdout(w io.Writer) {
	l.mu.Lock()
	l.stdout = w
	l.mu.Unlock()
}

func (l *Log) SetStderr(w io.Writer) {
	l.mu.Lock()
	l.stderr = w
	l.mu.Unlock()
}

// write must be called directly by the exported methods: the caller lookup depends on
// the call depth.
func (l *Log) write(s style, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < s.level {
		return
	}

	at := "?"
	if _, file, line, ok := runtime.Caller(2); ok {
		at = fmt.Sprintf("%s:%d", strings.TrimSuffix(filepath.Base(file), ".go"), line)
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("15:04:05.000 "))
	fmt.Fprintf(&b, "%-18s", at)
	if l.color && s.color != "" {
		b.WriteString(s.color + s.tag + " " + msg + colorReset)
	} else {
		b.WriteString(s.tag + " " + msg)
	}

	w := l.stdout
	if s.stderr {
		w = l.stderr
	}
	io.WriteString(w, b.String())
}

func (l *Log) Info(a ...any) {
	l.write(styleInfo, fmt.Sprintln(a...))
}
func (l *Log) Infof(format string, a ...any) {
	l.write(styleInfo, fmt.Sprintf(format+"\n", a...))
}

func (l *Log) Warn(a ...any) {
	l.write(styleWarn, fmt.Sprintln(a...))
}
func (l *Log) Warnf(format string, a ...any) {
	l.write(styleWarn, fmt.Sprintf(format+"\n", a...))
}

func (l *Log) Err(a ...any) {
	l.write(styleErr, fmt.Sprintln(a...))
}
func (l *Log) Errf(format string, a ...any) {
	l.write(styleErr, fmt.Sprintf(format+"\n", a...))
}

func (l *Log) Debug(a ...any) {
	l.write(styleDebug, fmt.Sprintln(a...))
}
func (l *Log) Debugf(format string, a ...any) {
	l.write(styleDebug, fmt.Sprintf(format+"\n", a...))
}

func (l *Log) Dev(a ...any) {
	l.write(styleDev, fmt.Sprintln(a...))
}
func (l *Log) Devf(format string, a ...any) {
	l.write(styleDev, fmt.Sprintf(format+"\n", a...))
}

// Fatal logs regardless of level and exits the process. Only commands call it.
func (l *Log) Fatal(a ...any) {
	l.write(styleFatal, fmt.Sprintln(a...))
	os.Exit(1)
}
