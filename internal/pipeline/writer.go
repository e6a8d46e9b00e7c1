package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// SummaryFile is the name of the cross-generation list index.
const SummaryFile = "summary.json"

// ArtifactName returns the file name of a generation artifact.
func ArtifactName(generation int) string {
	return fmt.Sprintf("generation_%d.json", generation)
}

// writeJSON writes v as 2-space indented JSON, replacing any previous file.
// Text is written as is, without HTML escaping.
func writeJSON(fsys afero.Fs, name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := afero.WriteFile(fsys, name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
