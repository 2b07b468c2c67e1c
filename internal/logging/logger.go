package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON stdout logger as the process default. main swaps
// in the DB-backed multi handler once the database is connected.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
