package ports

import "io"

// Logger defines the interface for diagnostic logging. Diagnostics never
// share a stream with the report payload.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Error(err error)

	// SetOutput redirects the diagnostic stream. Quiet mode passes
	// io.Discard.
	SetOutput(w io.Writer)
}
