package logger

import "context"

// discardLogger is active until Initialize runs, so packages can log from
// tests and startup code without a configured backend.
type discardLogger struct{}

func (discardLogger) Log(context.Context, LogEntry)  {}
func (discardLogger) Shutdown(context.Context) error { return nil }
