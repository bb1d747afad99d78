package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

// Logger writes leveled, category-tagged lines to stdout with per-level
// colors. Categories group output by subsystem (DATABASE, SESSION, API...).
type Logger struct {
	debug bool

	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
	debugColor *color.Color
	procColor  *color.Color
}

func NewLogger() *Logger {
	return &Logger{
		debug:      os.Getenv("DEBUG") == "1",
		infoColor:  color.New(color.FgGreen),
		warnColor:  color.New(color.FgYellow),
		errorColor: color.New(color.FgRed, color.Bold),
		debugColor: color.New(color.FgCyan),
		procColor:  color.New(color.FgMagenta, color.Bold),
	}
}

func (l *Logger) write(c *color.Color, level, category, message string) {
	ts := time.Now().Format("2006/01/02 15:04:05")
	c.Printf("%s [%s] [%s] %s\n", ts, level, category, message)
}

func (l *Logger) Info(category, message string) {
	l.write(l.infoColor, "INFO", category, message)
}

func (l *Logger) Warn(category, message string) {
	l.write(l.warnColor, "WARN", category, message)
}

func (l *Logger) Error(category, message string) {
	l.write(l.errorColor, "ERROR", category, message)
}

func (l *Logger) Debug(category, message string) {
	if !l.debug {
		return
	}
	l.write(l.debugColor, "DEBUG", category, message)
}

func (l *Logger) Fatal(category, message string) {
	l.write(l.errorColor, "FATAL", category, message)
	os.Exit(1)
}

// LogProcess marks a lifecycle step (startup, shutdown, component init).
func (l *Logger) LogProcess(category, message string) {
	l.write(l.procColor, "PROC", category, message)
}

func (l *Logger) LogDatabase(operation, database, message string) {
	l.Info("DATABASE", fmt.Sprintf("[%s:%s] %s", operation, database, message))
}

func (l *Logger) LogKafka(operation, topic, message string) {
	l.Info("KAFKA", fmt.Sprintf("[%s:%s] %s", operation, topic, message))
}

func (l *Logger) LogAPI(method, path, status, duration string) {
	l.Info("API", fmt.Sprintf("%s %s - %s (%s)", method, path, status, duration))
}

func (l *Logger) LogSecurity(event, message string) {
	l.Warn("SECURITY", fmt.Sprintf("[%s] %s", event, message))
}

func (l *Logger) Close() {}
