package ports

import "github.com/phaer/pip/internal/core/domain"

// StdoutDestination is the sentinel destination meaning "write the report to
// standard output, and nothing else on that stream".
const StdoutDestination = "-"

// ReportSink defines the interface for delivering a compiled report.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type ReportSink interface {
	// Write serializes the document to the destination. File destinations
	// are fully written or left untouched; a mid-serialization failure never
	// leaves a truncated file behind.
	Write(report *domain.Report, dest string) error
}
