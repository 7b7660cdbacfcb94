package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phaer/pip/internal/app"
	"github.com/phaer/pip/internal/core/domain"
	"github.com/phaer/pip/internal/core/ports"
	"github.com/phaer/pip/internal/core/ports/mocks"
	"github.com/phaer/pip/internal/engine/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader    *mocks.MockGraphLoader
	cache     *mocks.MockCacheIndex
	sink      *mocks.MockReportSink
	logger    *mocks.MockLogger
	telemetry *mocks.MockTelemetry
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Cached().AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).Return(context.Background(), vertex).AnyTimes()
	telemetry.EXPECT().Close().Return(nil).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	f := &fixture{
		loader:    mocks.NewMockGraphLoader(ctrl),
		cache:     mocks.NewMockCacheIndex(ctrl),
		sink:      mocks.NewMockReportSink(ctrl),
		logger:    logger,
		telemetry: telemetry,
	}
	f.app = app.New(f.loader, f.cache, compiler.New(telemetry, logger), f.sink, logger, telemetry)
	return f
}

func simpleResolution() *domain.Resolution {
	return &domain.Resolution{
		Nodes: []domain.ResolvedNode{{
			Name:    "simplewheel",
			Version: "2.0",
			Origin: domain.OriginDescriptor{
				URL:  "https://files.example.org/simplewheel-2.0-py3-none-any.whl",
				Hash: "sha256=ab12cd34",
			},
		}},
		Roots: []domain.RootRequirement{{Name: "simplewheel"}},
	}
}

func TestRun_WritesReport(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("resolution.yaml").Return(simpleResolution(), nil)
	f.sink.EXPECT().Write(gomock.Any(), ports.StdoutDestination).DoAndReturn(
		func(report *domain.Report, _ string) error {
			require.Len(t, report.Install, 1)
			assert.True(t, report.Install[0].Requested)
			return nil
		})

	err := f.app.Run(context.Background(), app.RunOptions{
		ResolutionFile: "resolution.yaml",
		Output:         ports.StdoutDestination,
	})
	require.NoError(t, err)
}

func TestRun_LoadFailureSkipsSink(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("nope.yaml").Return(nil, errors.New("no such file"))

	err := f.app.Run(context.Background(), app.RunOptions{
		ResolutionFile: "nope.yaml",
		Output:         ports.StdoutDestination,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load resolution result")
}

func TestRun_CompileFailureSkipsSink(t *testing.T) {
	f := newFixture(t)

	res := simpleResolution()
	res.Nodes[0].Version = ""
	f.loader.EXPECT().Load("resolution.yaml").Return(res, nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		ResolutionFile: "resolution.yaml",
		Output:         ports.StdoutDestination,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingMetadata))
}

func TestRun_CacheHitBackfillsRequirement(t *testing.T) {
	f := newFixture(t)

	res := &domain.Resolution{
		Nodes: []domain.ResolvedNode{{
			Name:    "pip-test-package",
			Version: "0.1.1",
			Origin: domain.OriginDescriptor{
				URL: "git+https://github.com/pypa/pip-test-package",
				VCS: "git",
			},
		}},
		Roots: []domain.RootRequirement{{Name: "pip-test-package", Explicit: true}},
	}
	f.loader.EXPECT().Load("resolution.yaml").Return(res, nil)
	f.cache.EXPECT().Lookup("/cache", gomock.Any()).Return(&domain.CacheEntry{
		OriginURL: "https://github.com/pypa/pip-test-package",
		VCS:       "git",
		CommitID:  "e2b8c2e5c8e91f3e0f35a0a5e0f2d9c6b1a4d7e8",
	}, nil)
	f.sink.EXPECT().Write(gomock.Any(), "report.json").DoAndReturn(
		func(report *domain.Report, _ string) error {
			require.Len(t, report.Install, 1)
			vcs, ok := report.Install[0].DownloadInfo.Info.(*domain.VCSInfo)
			require.True(t, ok)
			assert.Equal(t, "e2b8c2e5c8e91f3e0f35a0a5e0f2d9c6b1a4d7e8", vcs.CommitID)
			assert.Equal(t, "https://github.com/pypa/pip-test-package", report.Install[0].DownloadInfo.URL)
			return nil
		})

	err := f.app.Run(context.Background(), app.RunOptions{
		ResolutionFile: "resolution.yaml",
		Output:         "report.json",
		CacheDir:       "/cache",
	})
	require.NoError(t, err)
}

func TestRun_CacheMissLeavesNodeUntouched(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("resolution.yaml").Return(simpleResolution(), nil)
	f.cache.EXPECT().Lookup("/cache", gomock.Any()).Return(nil, nil)
	f.sink.EXPECT().Write(gomock.Any(), ports.StdoutDestination).DoAndReturn(
		func(report *domain.Report, _ string) error {
			archive, ok := report.Install[0].DownloadInfo.Info.(*domain.ArchiveInfo)
			require.True(t, ok)
			assert.Equal(t, "sha256=ab12cd34", archive.Hash)
			return nil
		})

	err := f.app.Run(context.Background(), app.RunOptions{
		ResolutionFile: "resolution.yaml",
		Output:         ports.StdoutDestination,
		CacheDir:       "/cache",
	})
	require.NoError(t, err)
}

func TestRun_CacheErrorAborts(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("resolution.yaml").Return(simpleResolution(), nil)
	f.cache.EXPECT().Lookup("/cache", gomock.Any()).Return(nil, errors.New("disk error"))

	err := f.app.Run(context.Background(), app.RunOptions{
		ResolutionFile: "resolution.yaml",
		Output:         ports.StdoutDestination,
		CacheDir:       "/cache",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache lookup failed")
}

func TestRun_SinkErrorPropagates(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("resolution.yaml").Return(simpleResolution(), nil)
	f.sink.EXPECT().Write(gomock.Any(), "report.json").Return(domain.ErrSinkWrite)

	err := f.app.Run(context.Background(), app.RunOptions{
		ResolutionFile: "resolution.yaml",
		Output:         "report.json",
	})
	assert.True(t, errors.Is(err, domain.ErrSinkWrite))
}
