package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = newLogger(os.Stderr, "development", "info")
}

// Init configures the global logger. Production environments log JSON,
// everything else gets the human readable console writer.
func Init(environment, level string) {
	InitWithWriter(os.Stderr, environment, level)
}

func InitWithWriter(w io.Writer, environment, level string) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w, environment, level)
}

func newLogger(w io.Writer, environment, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if !strings.EqualFold(environment, "production") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func Debug(msg string, args ...any) {
	withArgs(get().Debug(), args).Msg(msg)
}

func Info(msg string, args ...any) {
	withArgs(get().Info(), args).Msg(msg)
}

func Warn(msg string, args ...any) {
	withArgs(get().Warn(), args).Msg(msg)
}

func Error(msg string, args ...any) {
	withArgs(get().Error(), args).Msg(msg)
}

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) {
	withArgs(get().Fatal(), args).Msg(msg)
}

// withArgs accepts errors and key/value pairs in any mix:
//
//	logger.Error("load failed", err)
//	logger.Info("server starting", "address", addr)
func withArgs(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			e = e.Err(v)
		case string:
			if i+1 < len(args) {
				if err, ok := args[i+1].(error); ok {
					e = e.AnErr(v, err)
				} else {
					e = e.Interface(v, args[i+1])
				}
				i++
				continue
			}
			e = e.Str("detail", v)
		default:
			e = e.Interface(fmt.Sprintf("arg%d", i), v)
		}
	}
	return e
}
