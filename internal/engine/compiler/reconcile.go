package compiler

import (
	"github.com/phaer/pip/internal/core/domain"
	"go.trai.ch/zerr"
)

// reconcile adjusts a built entry for cache hits. Archive origins need no
// reconciliation (the cache key embeds the original URL and hash) and local
// directories are never cached. For a VCS checkout served from cache, the
// cache may retain only a locally built artifact without the originating
// reference, so the repository URL and commit id are substituted from the
// original requirement specification. All other VCS fields pass through.
func reconcile(entry *domain.InstallEntry, node domain.ResolvedNode) error {
	vcs, ok := entry.DownloadInfo.Info.(*domain.VCSInfo)
	if !ok || !node.Origin.CacheHit {
		return nil
	}

	req := node.Requirement
	if req.RepositoryURL == "" || req.CommitID == "" {
		return zerr.With(domain.ErrIncompleteProvenance, "package", node.Name)
	}

	entry.DownloadInfo.URL = domain.RepositoryURL(req.RepositoryURL, req.VCS)
	vcs.CommitID = req.CommitID
	return nil
}
