package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var output io.Writer = os.Stdout

// New 依 APP_ENV 選擇 handler：production 輸出 JSON，其餘為易讀文字，並設為預設 logger
func New(appEnv string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(appEnv, "production") {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}
