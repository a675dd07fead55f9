// Package match ranks catalog candidates proposed for a local comic item.
package match

import (
	"encoding/json"
	"fmt"
)

// Candidate is one catalog volume proposed as a match for a local item.
type Candidate struct {
	Name           string   `json:"name"`
	StartYear      int      `json:"start_year,omitempty"`
	Publisher      string   `json:"publisher,omitempty"`
	VolumeID       int64    `json:"volume_id,omitempty"` // 0 = no catalog volume, not selectable
	IssueImageURL  string   `json:"issue_image_url,omitempty"`
	ImageURL       string   `json:"image_url,omitempty"`
	VolumeImageURL string   `json:"volume_image_url,omitempty"`
	Rank           int      `json:"rank"`
	Confidence     *float64 `json:"confidence,omitempty"` // nil = no score, below any present value
	BestMatch      bool     `json:"best_match"`
}

// Selectable reports whether the candidate carries a catalog volume and can
// be confirmed as a match.
func (c Candidate) Selectable() bool {
	return c.VolumeID != 0
}

// ParseCandidates decodes the candidate sample cached on a local item.
// The sample may predate schema changes or be truncated; callers collapse a
// parse failure to an empty candidate set rather than surfacing it.
func ParseCandidates(raw []byte) ([]Candidate, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var candidates []Candidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, fmt.Errorf("parse cached matches: %w", err)
	}
	return candidates, nil
}
