package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cwsummary"
)

// Ensure LoggingConfigStore implements cwsummary.ConfigStore.
var _ cwsummary.ConfigStore = (*LoggingConfigStore)(nil)

// LoggingConfigStore wraps a ConfigStore with debug logging. Values are
// never logged since they may hold credentials.
type LoggingConfigStore struct {
	next   cwsummary.ConfigStore
	logger *slog.Logger
}

// NewLoggingConfigStore creates a new LoggingConfigStore.
func NewLoggingConfigStore(next cwsummary.ConfigStore, logger *slog.Logger) *LoggingConfigStore {
	return &LoggingConfigStore{next: next, logger: logger}
}

// GetValue delegates to the wrapped store and logs the lookup.
func (s *LoggingConfigStore) GetValue(ctx context.Context, rangeID, key string) (value string, err error) {
	defer func(begin time.Time) {
		logErr := err
		if cwsummary.ErrorCode(err) == cwsummary.ENOTFOUND {
			logErr = nil
		}
		s.logger.Info("config get",
			"range", rangeID,
			"key", key,
			"found", err == nil,
			"duration", time.Since(begin),
			"err", logErr,
		)
	}(time.Now())
	return s.next.GetValue(ctx, rangeID, key)
}

// StoreValue delegates to the wrapped store and logs the write.
func (s *LoggingConfigStore) StoreValue(ctx context.Context, rangeID, key, value string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("config store",
			"range", rangeID,
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.StoreValue(ctx, rangeID, key, value)
}
