// Package compiler turns a resolved dependency graph into an installation
// report document: one entry per distribution, carrying provenance and the
// requested-vs-transitive classification.
package compiler

import (
	"context"
	"fmt"

	"github.com/phaer/pip/internal/build"
	"github.com/phaer/pip/internal/core/domain"
	"github.com/phaer/pip/internal/core/ports"
	"go.trai.ch/zerr"
)

// Compiler compiles resolution results into report documents. It performs no
// I/O of its own; it only consumes already-resolved descriptors.
type Compiler struct {
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Compiler.
func New(telemetry ports.Telemetry, log ports.Logger) *Compiler {
	return &Compiler{
		telemetry: telemetry,
		logger:    log,
	}
}

// Compile walks the resolution in node order and produces the report
// document. The compile is atomic: on any failure no document is returned
// and the caller must not invoke the sink. Entry order matches node order
// exactly, so repeated compiles of an unchanged resolution are
// byte-identical once serialized.
func (c *Compiler) Compile(ctx context.Context, res *domain.Resolution) (*domain.Report, error) {
	entries := make([]domain.InstallEntry, 0, len(res.Nodes))

	for _, node := range res.Nodes {
		_, vertex := c.telemetry.Record(ctx, fmt.Sprintf("%s %s", node.Name, node.Version))

		entry, err := buildEntry(node)
		if err == nil {
			err = reconcile(&entry, node)
		}
		if err != nil {
			vertex.Complete(err)
			return nil, err
		}

		if node.Origin.CacheHit {
			vertex.Cached()
		}
		vertex.Complete(nil)

		entries = append(entries, entry)
	}

	classify(entries, res.Roots)

	report := &domain.Report{
		Version:   domain.SchemaVersion,
		Generator: build.Identifier(),
		Install:   entries,
	}

	if err := c.validate(report, res); err != nil {
		return nil, err
	}

	c.logger.Info(fmt.Sprintf("compiled install report with %d entries", len(entries)))
	return report, nil
}

// validate enforces the schema invariants before the document leaves the
// compiler: entry count equals node count, every requested entry matches a
// root requirement, explicit roots classified as direct origins, every
// entry carries exactly one provenance variant, and the serialized document
// conforms to the report schema.
func (c *Compiler) validate(report *domain.Report, res *domain.Resolution) error {
	if len(report.Install) != len(res.Nodes) {
		err := zerr.With(domain.ErrEntryCountMismatch, "entries", len(report.Install))
		return zerr.With(err, "nodes", len(res.Nodes))
	}

	roots := buildRootSet(res.Roots)
	explicit := make(map[domain.CanonicalName]bool, len(res.Roots))
	for _, root := range res.Roots {
		if root.Explicit {
			explicit[domain.Canonicalize(root.Name)] = true
		}
	}

	for _, entry := range report.Install {
		if entry.DownloadInfo.Info == nil {
			return zerr.With(domain.ErrSchemaViolation, "package", entry.Metadata.Name)
		}
		if entry.Requested {
			name := domain.Canonicalize(entry.Metadata.Name)
			if _, ok := roots[name]; !ok {
				return zerr.With(domain.ErrRequestedNotRoot, "package", entry.Metadata.Name)
			}
			if explicit[name] && !entry.IsDirect {
				return zerr.With(domain.ErrExplicitNotDirect, "package", entry.Metadata.Name)
			}
		}
	}

	return validateDocument(report)
}
