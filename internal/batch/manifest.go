package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"orrery/internal/overlay"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame    int     `json:"frame"`
	Tick     int     `json:"tick"`
	JD       float64 `json:"jd"`
	Image    string  `json:"image"`
	Attached string  `json:"attached,omitempty"`
}

// WriteManifest writes the successful frames to path as JSON.
func WriteManifest(path string, results []Result, clock overlay.Clock) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:    r.Frame,
			Tick:     r.Tick,
			JD:       clock.JD(r.Tick),
			Image:    r.File,
			Attached: r.Attached,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
