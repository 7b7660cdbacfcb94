// Package graphfile loads resolution result files: the resolver's ordered
// node sequence plus the root requirement set, serialized as YAML.
package graphfile

import (
	"os"

	"github.com/phaer/pip/internal/core/domain"
	"github.com/phaer/pip/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.GraphLoader = (*Loader)(nil)

// supportedVersion is the resolution file format this loader understands.
const supportedVersion = "1"

// Loader implements ports.GraphLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a resolution result from the given path.
func (l *Loader) Load(path string) (*domain.Resolution, error) {
	return Load(path)
}

// Load reads a resolution result file and returns the domain representation.
// Node order in the file is the resolution order and is preserved.
func Load(path string) (*domain.Resolution, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read resolution file")
	}

	var dto resolutionDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse resolution file")
	}

	if dto.Version != supportedVersion {
		return nil, zerr.With(zerr.New("unsupported resolution file version"), "version", dto.Version)
	}

	res := &domain.Resolution{
		Nodes: make([]domain.ResolvedNode, 0, len(dto.Install)),
		Roots: make([]domain.RootRequirement, 0, len(dto.Roots)),
	}

	for _, root := range dto.Roots {
		if root.Name == "" {
			return nil, zerr.New("root requirement without a name")
		}
		res.Roots = append(res.Roots, domain.RootRequirement{
			Name:     root.Name,
			Extras:   root.Extras,
			Explicit: root.Explicit,
		})
	}

	for _, node := range dto.Install {
		resolved := domain.ResolvedNode{
			Name:         node.Name,
			Version:      node.Version,
			RequiresDist: node.RequiresDist,
			Origin: domain.OriginDescriptor{
				URL:               node.Origin.URL,
				VCS:               node.Origin.VCS,
				RequestedRevision: node.Origin.RequestedRevision,
				CommitID:          node.Origin.CommitID,
				LocalPath:         node.Origin.LocalPath,
				Editable:          node.Origin.Editable,
				Explicit:          node.Origin.Explicit,
				Hash:              node.Origin.Hash,
				Hashes:            node.Origin.Hashes,
				CacheHit:          node.Origin.CacheHit,
			},
		}
		if node.Requirement != nil {
			resolved.Requirement = domain.OriginalRequirement{
				VCS:               node.Requirement.VCS,
				RepositoryURL:     node.Requirement.RepositoryURL,
				RequestedRevision: node.Requirement.RequestedRevision,
				CommitID:          node.Requirement.CommitID,
			}
		}
		res.Nodes = append(res.Nodes, resolved)
	}

	return res, nil
}
