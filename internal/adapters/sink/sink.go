// Package sink delivers compiled report documents to a file path or to
// standard output.
package sink

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/phaer/pip/internal/core/domain"
	"github.com/phaer/pip/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportSink = (*Writer)(nil)

// Writer implements ports.ReportSink. Serialization is deterministic: key
// order is the schema order fixed by the document's field order.
type Writer struct {
	stdout io.Writer
}

// New creates a Writer bound to the process's standard output.
func New() *Writer {
	return &Writer{stdout: os.Stdout}
}

// NewWithStdout creates a Writer with a custom stdout stream. Used by tests.
func NewWithStdout(stdout io.Writer) *Writer {
	return &Writer{stdout: stdout}
}

// Write serializes the document to the destination. The stdout sentinel
// writes the report as the sole payload on that stream. File destinations
// are written to a temporary file and atomically renamed into place, so a
// failure mid-serialization never leaves a truncated report behind.
func (s *Writer) Write(report *domain.Report, dest string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report")
	}
	data = append(data, '\n')

	if dest == ports.StdoutDestination {
		if _, err := s.stdout.Write(data); err != nil {
			return sinkErr(err)
		}
		return nil
	}

	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".report-*.json")
	if err != nil {
		return sinkErr(err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Best effort cleanup; gone already on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return sinkErr(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return sinkErr(err)
	}
	if err := tmp.Close(); err != nil {
		return sinkErr(err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return sinkErr(err)
	}
	return nil
}

// sinkErr keeps ErrSinkWrite in the error chain so callers can match it,
// carrying the cause's text as the outer message.
func sinkErr(err error) error {
	return zerr.Wrap(domain.ErrSinkWrite, err.Error())
}
