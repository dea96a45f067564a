package lob

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger allows setting a custom logger. The book never logs on the
// update or query paths; only cold paths such as Restore emit records.
func SetLogger(l *slog.Logger) {
	logger = l
}
