package compiler

import (
	"github.com/phaer/pip/internal/core/domain"
	"go.trai.ch/zerr"
)

// buildEntry maps one resolved graph node into one report entry: metadata
// pass-through, provenance classification, and the IsDirect flag. Requested
// and RequestedExtras stay at their zero values until classification runs.
func buildEntry(node domain.ResolvedNode) (domain.InstallEntry, error) {
	if node.Name == "" {
		return domain.InstallEntry{}, zerr.With(domain.ErrMissingMetadata, "version", node.Version)
	}
	if node.Version == "" {
		return domain.InstallEntry{}, zerr.With(domain.ErrMissingMetadata, "package", node.Name)
	}

	info, isDirect, err := domain.Classify(node.Origin)
	if err != nil {
		return domain.InstallEntry{}, zerr.With(err, "package", node.Name)
	}

	requires := node.RequiresDist
	if requires == nil {
		requires = []string{}
	}

	return domain.InstallEntry{
		Metadata: domain.Metadata{
			Name:         node.Name,
			Version:      node.Version,
			RequiresDist: requires,
		},
		RequestedExtras: []string{},
		IsDirect:        isDirect,
		DownloadInfo:    info,
	}, nil
}
