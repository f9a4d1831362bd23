package service

import (
	"log/slog"
)

// logFailure reports a step whose failure must not fail the user action.
func logFailure(step string, err error, attrs ...any) {
	if err == nil {
		return
	}
	attrs = append(attrs, slog.String("error", err.Error()))
	slog.Warn(step+" failed", attrs...)
}
