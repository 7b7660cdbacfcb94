// Package app implements the application layer for pipreport.
package app

import (
	"context"
	"fmt"
	"runtime"

	"github.com/phaer/pip/internal/core/domain"
	"github.com/phaer/pip/internal/core/ports"
	"github.com/phaer/pip/internal/engine/compiler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic: load a resolution result,
// reconcile it against the local cache, compile the report, deliver it.
type App struct {
	loader    ports.GraphLoader
	cache     ports.CacheIndex
	compiler  *compiler.Compiler
	sink      ports.ReportSink
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.GraphLoader,
	cache ports.CacheIndex,
	comp *compiler.Compiler,
	reportSink ports.ReportSink,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:    loader,
		cache:     cache,
		compiler:  comp,
		sink:      reportSink,
		logger:    log,
		telemetry: telemetry,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ResolutionFile is the path of the resolution result to compile.
	ResolutionFile string

	// Output is the report destination: a file path, or the stdout
	// sentinel "-".
	Output string

	// CacheDir is the root of the local wheel/VCS cache. Empty disables
	// cache reconciliation against the on-disk index.
	CacheDir string
}

// Run compiles one installation report. The sink is only invoked on a fully
// valid document; any failure before that leaves the destination untouched.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Error(err)
		}
	}()

	res, err := a.loader.Load(opts.ResolutionFile)
	if err != nil {
		return zerr.Wrap(err, "failed to load resolution result")
	}

	if opts.CacheDir != "" {
		if err := a.consultCache(opts.CacheDir, res.Nodes); err != nil {
			return zerr.Wrap(err, "cache lookup failed")
		}
	}

	report, err := a.compiler.Compile(ctx, res)
	if err != nil {
		return zerr.Wrap(err, "report compilation failed")
	}

	if err := a.sink.Write(report, opts.Output); err != nil {
		return err
	}

	if opts.Output != ports.StdoutDestination {
		a.logger.Info(fmt.Sprintf("wrote install report to %s", opts.Output))
	}
	return nil
}

// consultCache marks nodes whose artifacts are present in the on-disk cache
// and backfills the original remote reference the cache retained. Lookups
// are independent file reads, so they run concurrently; each goroutine owns
// exactly one node.
func (a *App) consultCache(dir string, nodes []domain.ResolvedNode) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i := range nodes {
		g.Go(func() error {
			entry, err := a.cache.Lookup(dir, nodes[i].Origin)
			if err != nil {
				return err
			}
			if entry == nil {
				return nil
			}

			node := &nodes[i]
			node.Origin.CacheHit = true

			// The resolution file wins when it already carries the original
			// reference; the cache only fills the gaps.
			if node.Requirement.RepositoryURL == "" {
				node.Requirement.RepositoryURL = entry.OriginURL
			}
			if node.Requirement.VCS == "" {
				node.Requirement.VCS = entry.VCS
			}
			if node.Requirement.RequestedRevision == "" {
				node.Requirement.RequestedRevision = entry.RequestedRevision
			}
			if node.Requirement.CommitID == "" {
				node.Requirement.CommitID = entry.CommitID
			}
			return nil
		})
	}

	return g.Wait()
}
