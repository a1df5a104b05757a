// Package console writes key=value log lines for the md2adf CLI. It is the
// zero-configuration provider; go-logger backs the "gologger" provider.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-md2adf/internal/logging"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

// Level is the severity of an entry. The zero value is LevelInfo.
type Level int

const (
	LevelTrace Level = iota - 2
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return levelNames[LevelInfo]
}

// ParseLevel maps a configured level name onto a Level. Blank means info.
func ParseLevel(value string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(value))
	switch name {
	case "":
		return LevelInfo, nil
	case "WARNING":
		return LevelWarn, nil
	}
	for level, label := range levelNames {
		if label == name {
			return level, nil
		}
	}
	return LevelInfo, fmt.Errorf("console logger: unknown level %q", value)
}

// Options configures the provider. A nil Writer means stderr, a nil Clock
// means time.Now.
type Options struct {
	Writer io.Writer
	Level  Level
	Clock  func() time.Time
}

type sink struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
	clock func() time.Time
}

// NewProvider returns a provider whose loggers share one writer.
func NewProvider(opts Options) interfaces.LoggerProvider {
	s := &sink{out: opts.Writer, level: opts.Level, clock: opts.Clock}
	if s.out == nil {
		s.out = os.Stderr
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	return s
}

func (s *sink) GetLogger(name string) interfaces.Logger {
	return &consoleLogger{sink: s, fields: map[string]any{"logger": name}}
}

func (s *sink) write(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, line)
}

type consoleLogger struct {
	sink   *sink
	fields map[string]any
	ctx    context.Context
}

var _ interfaces.FieldsLogger = (*consoleLogger)(nil)

func (l *consoleLogger) Trace(msg string, args ...any) { l.log(LevelTrace, msg, args) }
func (l *consoleLogger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args) }
func (l *consoleLogger) Info(msg string, args ...any)  { l.log(LevelInfo, msg, args) }
func (l *consoleLogger) Warn(msg string, args ...any)  { l.log(LevelWarn, msg, args) }
func (l *consoleLogger) Error(msg string, args ...any) { l.log(LevelError, msg, args) }
func (l *consoleLogger) Fatal(msg string, args ...any) { l.log(LevelFatal, msg, args) }

func (l *consoleLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	return &consoleLogger{sink: l.sink, fields: merge(l.fields, fields), ctx: l.ctx}
}

func (l *consoleLogger) WithContext(ctx context.Context) interfaces.Logger {
	return &consoleLogger{sink: l.sink, fields: l.fields, ctx: ctx}
}

func (l *consoleLogger) log(level Level, msg string, args []any) {
	if level < l.sink.level {
		return
	}
	fields := merge(l.fields, logging.ContextFields(l.ctx))
	fields = merge(fields, pairs(args))
	l.sink.write(format(l.sink.clock().UTC(), level, msg, fields))
}

// merge returns a new map holding base overlaid with extra.
func merge(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range extra {
		out[key] = value
	}
	return out
}

// pairs reads args as key/value pairs. Values without a usable string key
// are stored as arg<N> by position.
func pairs(args []any) map[string]any {
	out := make(map[string]any, len(args)/2+1)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			out["arg"+strconv.Itoa(i)] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg" + strconv.Itoa(i+1)
		}
		out[key] = args[i+1]
	}
	return out
}

func format(ts time.Time, level Level, msg string, fields map[string]any) string {
	var b strings.Builder
	b.WriteString(ts.Format(time.RFC3339Nano))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value(fields[key]))
	}
	b.WriteByte('\n')
	return b.String()
}

func value(v any) string {
	var s string
	switch typed := v.(type) {
	case nil:
		return "null"
	case time.Time:
		s = typed.UTC().Format(time.RFC3339Nano)
	case error:
		s = typed.Error()
	default:
		s = fmt.Sprint(typed)
	}
	if s == "" || strings.ContainsAny(s, " \t\n\r=\"") {
		return strconv.Quote(s)
	}
	return s
}
