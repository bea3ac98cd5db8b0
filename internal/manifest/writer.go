package manifest

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty manifest for a run over sourceDir.
func New(sourceDir string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		SourceDir:   sourceDir,
		Artifacts:   make(map[string]Artifact),
	}
}

// ComputeStats recalculates aggregate statistics from the artifact
// entries, preserving the error count set by the converter.
func (m *Manifest) ComputeStats() {
	s := Stats{Errors: m.Stats.Errors}
	s.TotalArtifacts = len(m.Artifacts)
	for _, a := range m.Artifacts {
		s.TotalBytes += a.Size
		s.TotalPixels += int64(a.Width) * int64(a.Height)
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
