package manifest

// Manifest is the optional machine-readable record of one conversion
// run, written next to the generated headers when --manifest is set.
type Manifest struct {
	Version     int                 `json:"version"`
	GeneratedAt string              `json:"generated_at"`
	SourceDir   string              `json:"source_dir"`
	Artifacts   map[string]Artifact `json:"artifacts"` // keyed by source-relative path
	Stats       Stats               `json:"stats"`
}

// Artifact describes one generated header.
type Artifact struct {
	Path   string `json:"path"`  // relative to the output root
	Ident  string `json:"ident"` // base identifier of the generated symbols
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"` // first 16 hex chars of xxhash64
}

// Stats aggregates run metrics.
type Stats struct {
	TotalArtifacts int   `json:"total_artifacts"`
	TotalBytes     int64 `json:"total_bytes"`
	TotalPixels    int64 `json:"total_pixels"`
	Errors         int   `json:"errors,omitempty"` // files that failed to convert
}

// FileName is the manifest's name inside the output root.
const FileName = "img2c.manifest.json"

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
