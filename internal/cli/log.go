package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a leveled logger on w with short "15:04:05.00" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs a completion message with the time elapsed since creation.
type progress struct {
	logger *log.Logger
	start  time.Time
	now    func() time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now(), now: time.Now}
}

// done logs e.g. "Rendered 2 artifact(s) (12ms)". Runs under a millisecond
// report "(0s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.now().Sub(p.start).Round(time.Millisecond))
}

type loggerKey struct{}

// withLogger attaches l to ctx for the duration of a command.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the command logger, or log.Default() when none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
