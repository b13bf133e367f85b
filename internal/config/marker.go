package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// markerFileName is the marker written into the repository's git
// directory at enlist time.
const markerFileName = ".spriteit"

// Marker records which file a repository was enlisted around, so commands
// invoked without a file argument know what to operate on.
type Marker struct {
	// File is the enlisted file's path relative to the repository root
	File string `json:"file"`
	// EnlistedAt is when the repository was created
	EnlistedAt time.Time `json:"enlistedAt"`
}

// ReadMarker reads the marker from a git directory. A missing marker is
// not an error; the repository may have been created by plain git.
func ReadMarker(gitDir string) (*Marker, error) {
	data, err := os.ReadFile(filepath.Join(gitDir, markerFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read marker: %w", err)
	}

	var marker Marker
	if err := json.Unmarshal(data, &marker); err != nil {
		return nil, fmt.Errorf("failed to parse marker: %w", err)
	}
	return &marker, nil
}

// WriteMarker writes the marker into a git directory
func WriteMarker(gitDir string, marker *Marker) error {
	data, err := json.MarshalIndent(marker, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal marker: %w", err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, markerFileName), data, 0600); err != nil {
		return fmt.Errorf("failed to write marker: %w", err)
	}
	return nil
}
