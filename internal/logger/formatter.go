package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// UserFormatter renders clean user-facing lines: an optional emoji prefix
// followed by the message, nothing else.
type UserFormatter struct{}

// Format implements logrus.Formatter
func (f *UserFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if emoji, ok := entry.Data["emoji"].(string); ok && emoji != "" {
		b.WriteString(emoji)
		b.WriteString(" ")
	}
	b.WriteString(entry.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// OpFormatter renders operational log lines with a level prefix and any
// structured fields appended as key=value pairs.
type OpFormatter struct {
	EnableColors bool
}

// NewOpFormatter enables colors when out is a terminal.
func NewOpFormatter(out io.Writer) *OpFormatter {
	type fd interface{ Fd() uintptr }
	colors := false
	if f, ok := out.(fd); ok {
		colors = isatty.IsTerminal(f.Fd())
	}
	return &OpFormatter{EnableColors: colors}
}

// Format implements logrus.Formatter
func (f *OpFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	levelColor, resetColor := "", ""
	if f.EnableColors {
		switch entry.Level {
		case logrus.ErrorLevel:
			levelColor = "\033[31m" // Red
		case logrus.WarnLevel:
			levelColor = "\033[33m" // Yellow
		case logrus.InfoLevel:
			levelColor = "\033[36m" // Cyan
		case logrus.DebugLevel:
			levelColor = "\033[37m" // White
		}
		resetColor = "\033[0m"
	}

	b.WriteString(levelColor)
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString(resetColor)
	b.WriteString(": ")
	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			if k == "emoji" {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
