package comicarr

import "encoding/json"

// Item is a local comic file the server could not match automatically.
//
// RawMatches holds the candidate sample cached by the server at scan time.
// It may be malformed; callers parse it through match.ParseCandidates and
// treat a parse failure as an empty candidate set.
type Item struct {
	ID            int64           `json:"id"`
	Path          string          `json:"path"`
	IssueNumber   string          `json:"issue_number"` // hint extracted from the filename
	VolumeID      int64           `json:"volume_id"`    // previously resolved volume, 0 if none
	IssueID       int64           `json:"issue_id"`     // previously resolved issue, 0 if none
	IssueCoverURL string          `json:"issue_cover_url"`
	RawMatches    json.RawMessage `json:"raw_matches"`
}

// Library is a destination collection managed by the server.
type Library struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	RootPath string `json:"root_path"`
	Default  bool   `json:"is_default"`
	Enabled  bool   `json:"is_enabled"`
}

// ImportResult is the record created by a successful import.
type ImportResult struct {
	ID       int64  `json:"id"`
	VolumeID int64  `json:"volume_id"`
	Title    string `json:"title"`
	Year     int    `json:"year,omitempty"`
	Folder   string `json:"folder_name"`
}

// DefaultLibrary returns the index of the library that should be preselected:
// the enabled default if there is one, otherwise the first enabled library.
// Returns -1 when no library is selectable.
func DefaultLibrary(libraries []Library) int {
	first := -1
	for i, lib := range libraries {
		if !lib.Enabled {
			continue
		}
		if lib.Default {
			return i
		}
		if first == -1 {
			first = i
		}
	}
	return first
}

type itemsResponse struct {
	Items []Item `json:"items"`
}

type librariesResponse struct {
	Libraries []Library `json:"libraries"`
}

type errorResponse struct {
	Message string `json:"message"`
}
