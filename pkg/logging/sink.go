// Package logging implements the logr.LogSink this library's own decode
// trace (pkg/item.Parse/ParseList) writes through when a caller opts into
// human-readable output (cmd/shellitemdump's -v/-vv flags). Unlike a
// generic key-value logger, it knows two of this library's own field
// names — "classType" and "variant" — and formats them the way a reader
// of a shell-item decode trace wants to see them: classType as a hex
// byte, variant tinted by which of the ~8 variant families it names.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
)

const (
	LEVEL_INFO  = 0
	LEVEL_DEBUG = 1
	LEVEL_TRACE = 2
)

var (
	infoColor  = color.New(color.FgGreen).SprintFunc()
	debugColor = color.New(color.FgCyan).SprintFunc()
	traceColor = color.New(color.FgYellow).SprintFunc()
	errorColor = color.New(color.FgRed).SprintFunc()

	// variantColors tints a "variant" field's value by family, so a trace
	// of a mixed item chain visually groups repeated variants without
	// needing to read each line's text.
	variantColors = map[string]func(a ...interface{}) string{
		"ROOT_FOLDER":         color.New(color.FgMagenta).SprintFunc(),
		"VOLUME":              color.New(color.FgBlue).SprintFunc(),
		"FILE_ENTRY":          color.New(color.FgGreen).SprintFunc(),
		"NETWORK_LOCATION":    color.New(color.FgCyan).SprintFunc(),
		"COMPRESSED_FOLDER":   color.New(color.FgYellow).SprintFunc(),
		"CONTROL_PANEL":       color.New(color.FgRed).SprintFunc(),
		"URI":                 color.New(color.FgBlue).SprintFunc(),
		"USERS_PROPERTY_VIEW": color.New(color.FgMagenta).SprintFunc(),
		"DELEGATE":            color.New(color.FgYellow).SprintFunc(),
	}
)

// ShellItemLogSink implements logr.LogSink for human-readable, optionally
// colorized decode-trace output.
type ShellItemLogSink struct {
	writer       io.Writer
	minVerbosity int
	name         string
	keyValues    []interface{}
	mutex        sync.Mutex
	callDepth    int
	useColor     bool
}

// NewShellItemLogSink creates a new ShellItemLogSink. If writer is nil, it
// defaults to os.Stdout. minVerbosity sets the minimum verbosity level to
// log.
func NewShellItemLogSink(writer io.Writer, minVerbosity int, useColor bool) *ShellItemLogSink {
	if writer == nil {
		writer = os.Stdout
	}
	return &ShellItemLogSink{
		writer:       writer,
		minVerbosity: minVerbosity,
		keyValues:    []interface{}{},
		useColor:     useColor,
	}
}

// Init initializes the logger with runtime information.
func (s *ShellItemLogSink) Init(info logr.RuntimeInfo) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.callDepth = info.CallDepth
}

// Enabled determines if the logger is enabled for the given verbosity level.
func (s *ShellItemLogSink) Enabled(level int) bool {
	return level <= s.minVerbosity
}

// Info logs a non-error message with key-value pairs.
func (s *ShellItemLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if !s.Enabled(level) {
		return
	}
	s.log(false, level, msg, keysAndValues...)
}

// Error logs an error message with key-value pairs.
func (s *ShellItemLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	allKeysAndValues := append(keysAndValues, "error", err)
	s.log(true, 0, msg, allKeysAndValues...) // Level is irrelevant for errors
}

// WithValues adds key-value pairs to the logger.
func (s *ShellItemLogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	newKeyValues := append(append([]interface{}{}, s.keyValues...), keysAndValues...)
	return &ShellItemLogSink{
		writer:       s.writer,
		minVerbosity: s.minVerbosity,
		name:         s.name,
		keyValues:    newKeyValues,
		useColor:     s.useColor,
	}
}

// WithName adds a name to the logger.
func (s *ShellItemLogSink) WithName(name string) logr.LogSink {
	newName := name
	if s.name != "" {
		newName = fmt.Sprintf("%s.%s", s.name, name)
	}
	return &ShellItemLogSink{
		writer:       s.writer,
		minVerbosity: s.minVerbosity,
		name:         newName,
		keyValues:    append([]interface{}{}, s.keyValues...),
		useColor:     s.useColor,
	}
}

// V returns an independent copy of the sink. The level argument is not
// used: the copy keeps this sink's minimum verbosity.
func (s *ShellItemLogSink) V(level int) logr.LogSink {
	return &ShellItemLogSink{
		writer:       s.writer,
		minVerbosity: s.minVerbosity,
		name:         s.name,
		keyValues:    append([]interface{}{}, s.keyValues...),
		useColor:     s.useColor,
	}
}

// log handles the formatting and writing of log messages with colors.
func (s *ShellItemLogSink) log(isError bool, level int, msg string, keysAndValues ...interface{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var label string
	if isError {
		label = fmt.Sprintf("%s ", errorColor("[ERROR]"))
	} else {
		switch level {
		case 0:
			label = fmt.Sprintf("%s ", infoColor("[INFO]"))
		case 1:
			label = fmt.Sprintf("%s ", debugColor("[DEBUG]"))
		case 2:
			label = fmt.Sprintf("%s ", traceColor("[TRACE]"))
		default:
			label = fmt.Sprintf("[LEVEL %d] ", level)
		}
	}

	fullMsg := msg
	if s.name != "" {
		fullMsg = fmt.Sprintf("[%s] %s", s.name, msg)
	}
	fullMsg = label + fullMsg

	fmt.Fprintln(s.writer, fullMsg)

	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("key%d", i/2)
		}
		fmt.Fprintf(s.writer, "  %s: %s\n", key, s.formatValue(key, keysAndValues[i+1]))
	}
}

// formatValue renders one field's value, special-casing the two shell-item
// decode fields this library actually logs (pkg/item/parse.go): classType
// as a hex byte and variant tinted by family. Every other field falls back
// to fmt's default verb, same as the generic logger this replaces.
func (s *ShellItemLogSink) formatValue(key string, value interface{}) string {
	switch key {
	case "classType":
		switch v := value.(type) {
		case byte:
			return fmt.Sprintf("0x%02X", v)
		case int:
			return fmt.Sprintf("0x%02X", v)
		}
	case "variant":
		if name, ok := value.(string); ok {
			if s.useColor {
				if tint, ok := variantColors[name]; ok {
					return tint(name)
				}
			}
			return name
		}
	}
	return fmt.Sprintf("%v", value)
}

// NewShellItemLogger creates a new logr.Logger using ShellItemLogSink. If
// writer is nil, it defaults to os.Stdout. minVerbosity sets the minimum
// verbosity level to log.
func NewShellItemLogger(writer io.Writer, minVerbosity int, useColor bool) logr.Logger {
	sink := NewShellItemLogSink(writer, minVerbosity, useColor)
	return logr.New(sink)
}
