package compiler

import (
	"slices"

	"github.com/phaer/pip/internal/core/domain"
)

// buildRootSet merges root requirements by canonical name. Multiple roots
// for the same canonical name union their extras, preserving the order of
// first appearance.
func buildRootSet(roots []domain.RootRequirement) map[domain.CanonicalName][]string {
	set := make(map[domain.CanonicalName][]string, len(roots))
	for _, root := range roots {
		name := domain.Canonicalize(root.Name)
		existing, ok := set[name]
		if !ok {
			set[name] = slices.Clone(root.Extras)
			continue
		}
		for _, extra := range root.Extras {
			if !slices.Contains(existing, extra) {
				existing = append(existing, extra)
			}
		}
		set[name] = existing
	}
	return set
}

// classify sets Requested and RequestedExtras on every entry whose canonical
// name matches a root requirement. Appearing as a dependency of another
// entry never makes an entry requested, regardless of graph depth.
func classify(entries []domain.InstallEntry, roots []domain.RootRequirement) {
	set := buildRootSet(roots)
	for i := range entries {
		extras, ok := set[domain.Canonicalize(entries[i].Metadata.Name)]
		if !ok {
			continue
		}
		entries[i].Requested = true
		if len(extras) > 0 {
			entries[i].RequestedExtras = slices.Clone(extras)
		}
	}
}
