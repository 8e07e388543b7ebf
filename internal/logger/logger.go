package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	slogmulti "github.com/samber/slog-multi"
)

// Init initializes the logger
func Init(debug, noColor bool) {
	log.SetDefault(log.NewWithOptions(os.Stderr,
		log.Options{
			ReportCaller:    true,
			ReportTimestamp: false, // the prompt already tells where we are
			TimeFormat:      time.RFC3339,
			Prefix:          "TAPEBOX",
		}))

	log.SetLevel(log.WarnLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}

// New returns the structured logger handed to the machine.
// With a trace writer, every record is also written there as JSON, debug level included.
func New(trace io.Writer) *slog.Logger {
	if trace == nil {
		return slog.New(log.Default())
	}

	return slog.New(slogmulti.Fanout(
		log.Default(),
		slog.NewJSONHandler(trace, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	))
}
