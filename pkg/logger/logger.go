package logger

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Logger описывает минимальный интерфейс структурированного логгера,
// достаточный для использования в usecase-слое и handler'ах.
type Logger interface {
	Info(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type stdLogger struct {
	l *log.Logger
}

// Default возвращает логгер на базе стандартного пакета log.
func Default() Logger {
	return &stdLogger{l: log.Default()}
}

// New возвращает логгер, пишущий в переданный *log.Logger.
func New(l *log.Logger) Logger {
	return &stdLogger{l: l}
}

func (s *stdLogger) Info(msg string, fields map[string]any) {
	s.l.Printf("INFO: %s%s", msg, formatFields(fields))
}

func (s *stdLogger) Error(msg string, fields map[string]any) {
	s.l.Printf("ERROR: %s%s", msg, formatFields(fields))
}

// formatFields печатает поля в виде " key=value" в отсортированном порядке.
func formatFields(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, fields[k])
	}
	return sb.String()
}

type nopLogger struct{}

// Nop возвращает логгер, который ничего не пишет (для тестов).
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
