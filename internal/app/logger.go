package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
)

func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// rewriteLogLevel colors the level of top-level records.
func rewriteLogLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) != 0 {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	var levelText string
	switch level {
	case slog.LevelDebug:
		levelText = "DEBUG"
	case slog.LevelInfo:
		levelText = color.GreenString("INFO")
	case slog.LevelWarn:
		levelText = color.YellowString("WARN")
	case slog.LevelError:
		levelText = color.RedString("ERROR")
	default:
		levelText = level.String()
	}
	a.Value = slog.StringValue(levelText)
	return a
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level := parseLevel(levelStr)

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(outW, &tint.Options{
		Level:       level,
		TimeFormat:  time.DateTime,
		NoColor:     color.NoColor,
		ReplaceAttr: rewriteLogLevel,
	}))
}
