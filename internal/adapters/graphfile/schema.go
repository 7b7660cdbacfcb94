package graphfile

// resolutionDTO is the on-disk shape of a resolution result file.
type resolutionDTO struct {
	Version string    `yaml:"version"`
	Roots   []rootDTO `yaml:"roots"`
	Install []nodeDTO `yaml:"install"`
}

// rootDTO is one top-level requirement as the user gave it.
type rootDTO struct {
	Name     string   `yaml:"name"`
	Extras   []string `yaml:"extras"`
	Explicit bool     `yaml:"explicit"`
}

// nodeDTO is one resolved node, in resolution order.
type nodeDTO struct {
	Name         string          `yaml:"name"`
	Version      string          `yaml:"version"`
	RequiresDist []string        `yaml:"requires_dist"`
	Origin       originDTO       `yaml:"origin"`
	Requirement  *requirementDTO `yaml:"requirement"`
}

// originDTO is the fetch layer's descriptor for one node.
type originDTO struct {
	URL               string            `yaml:"url"`
	VCS               string            `yaml:"vcs"`
	RequestedRevision string            `yaml:"requested_revision"`
	CommitID          string            `yaml:"commit_id"`
	LocalPath         string            `yaml:"local_path"`
	Editable          bool              `yaml:"editable"`
	Explicit          bool              `yaml:"explicit"`
	Hash              string            `yaml:"hash"`
	Hashes            map[string]string `yaml:"hashes"`
	CacheHit          bool              `yaml:"cache_hit"`
}

// requirementDTO is the original requirement specification for one node,
// carried alongside the cache descriptor for reconciliation.
type requirementDTO struct {
	VCS               string `yaml:"vcs"`
	RepositoryURL     string `yaml:"repository_url"`
	RequestedRevision string `yaml:"requested_revision"`
	CommitID          string `yaml:"commit_id"`
}
