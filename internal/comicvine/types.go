package comicvine

// Volume is a comic volume returned by a catalog search.
type Volume struct {
	ID               int64
	Name             string
	StartYear        int // 0 when the catalog has no start year
	Publisher        string
	PublisherCountry string
	Tag              string // volume tag, e.g. "V2012"; empty when absent
	IssueCount       int
	Description      string
	CoverURL         string
}

// SearchPage is one page of volume search results.
type SearchPage struct {
	Results []Volume
	Total   int // total matches across all pages
}

// Raw API response shapes. The API wraps every payload in an envelope with a
// status code and error string.

type envelope struct {
	Error                string `json:"error"`
	StatusCode           int    `json:"status_code"`
	NumberOfTotalResults int    `json:"number_of_total_results"`
}

type volumeSearchResponse struct {
	envelope
	Results []volumeResult `json:"results"`
}

type volumeResult struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	StartYear     string           `json:"start_year"`
	Publisher     *publisherResult `json:"publisher"`
	VolumeTag     string           `json:"volume_tag"`
	CountOfIssues int              `json:"count_of_issues"`
	Description   string           `json:"description"`
	Image         *imageResult     `json:"image"`
}

type publisherResult struct {
	Name            string `json:"name"`
	LocationCountry string `json:"location_country"`
}

type imageResult struct {
	SmallURL    string `json:"small_url"`
	MediumURL   string `json:"medium_url"`
	OriginalURL string `json:"original_url"`
}

type issueSearchResponse struct {
	envelope
	Results []issueResult `json:"results"`
}

type issueResult struct {
	ID          int64        `json:"id"`
	IssueNumber string       `json:"issue_number"`
	Image       *imageResult `json:"image"`
}
