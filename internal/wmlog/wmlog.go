// Package wmlog wires the process default slog.Logger to console-slog, the
// same setup ItsNotGoodName-x-ipcviewer uses for its window-manager-facing
// CLI (§10.2 "Logging").
package wmlog

import (
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
)

// Init installs a console.Handler writing to stderr as the default logger.
// Every package in this module logs through slog's package-level functions
// rather than holding a *slog.Logger, matching the corpus's convention.
func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}
