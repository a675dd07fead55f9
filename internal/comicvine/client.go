// Package comicvine provides access to the ComicVine catalog API.
package comicvine

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://comicvine.gamespot.com/api"
	userAgent      = "comicarr/0.1 (https://github.com/ComicarrDev/comicarr-sub001)"
	rateLimitDur   = time.Second // ComicVine throttles aggressive clients
)

// Client provides access to the ComicVine API.
//
// Failed calls are surfaced to the caller as-is; the client does not retry.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	lastRequest time.Time
	mu          sync.Mutex
}

// NewClient creates a new ComicVine API client.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint.
// Used for proxies and tests.
func NewClientWithBaseURL(baseURL, apiKey string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// SearchVolumes searches the catalog for volumes matching the query.
// Page is 1-based; limit caps the number of results per page.
func (c *Client) SearchVolumes(query string, page, limit int) (*SearchPage, error) {
	c.waitForRateLimit()

	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("resources", "volume")
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	reqURL := fmt.Sprintf("%s/search/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequest(http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API status %d: %s", resp.StatusCode, string(body))
	}

	var result volumeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if result.Error != "OK" && result.Error != "" {
		return nil, fmt.Errorf("API error: %s", result.Error)
	}

	return &SearchPage{
		Results: convertVolumes(result.Results),
		Total:   result.NumberOfTotalResults,
	}, nil
}

// ResolveIssueCover looks up the cover image for one issue of a volume.
// Returns an empty string when the catalog has no cover for that issue.
func (c *Client) ResolveIssueCover(volumeID int64, issueNumber string) (string, error) {
	c.waitForRateLimit()

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("filter", fmt.Sprintf("volume:%d,issue_number:%s", volumeID, issueNumber))
	params.Set("field_list", "id,issue_number,image")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/issues/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequest(http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var result issueSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	for _, issue := range result.Results {
		if issue.Image != nil && issue.Image.SmallURL != "" {
			return issue.Image.SmallURL, nil
		}
	}
	return "", nil
}

// waitForRateLimit spaces out requests so the API does not throttle us.
func (c *Client) waitForRateLimit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	elapsed := time.Since(c.lastRequest)
	if elapsed < rateLimitDur {
		time.Sleep(rateLimitDur - elapsed)
	}
	c.lastRequest = time.Now()
}

// convertVolumes converts raw API results to Volume structs.
func convertVolumes(results []volumeResult) []Volume {
	volumes := make([]Volume, 0, len(results))
	for i := range results {
		r := &results[i]
		v := Volume{
			ID:          r.ID,
			Name:        r.Name,
			StartYear:   parseYear(r.StartYear),
			Tag:         r.VolumeTag,
			IssueCount:  r.CountOfIssues,
			Description: r.Description,
		}
		if r.Publisher != nil {
			v.Publisher = r.Publisher.Name
			v.PublisherCountry = r.Publisher.LocationCountry
		}
		if r.Image != nil {
			v.CoverURL = r.Image.MediumURL
		}
		volumes = append(volumes, v)
	}
	return volumes
}

// parseYear parses a catalog year string ("2012", "2012-03") to an int.
// Returns 0 when the value is absent or malformed.
func parseYear(s string) int {
	if len(s) > 4 {
		s = s[:4]
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < 0 {
		return 0
	}
	return year
}
