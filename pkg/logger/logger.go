package logger

import (
	"log/slog"
	"os"
)

// Log defaults to the stdlib handler so packages can log before Init runs
// (tests, helper binaries). Init swaps in the production handler.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
