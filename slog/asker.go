package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cwsummary"
)

// Ensure LoggingAsker implements cwsummary.Asker.
var _ cwsummary.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with debug logging.
type LoggingAsker struct {
	next   cwsummary.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next cwsummary.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs sizes, not content.
func (a *LoggingAsker) Ask(ctx context.Context, summary, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("ask",
			"summary_bytes", len(summary),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, summary, question)
}
