package refine

import "github.com/ComicarrDev/comicarr-sub001/internal/comicvine"

// PageSize is the fixed number of results shown per page.
const PageSize = 12

// TotalPages returns the page count for n results, never less than 1.
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage confines page to [1, totalPages]. Callers re-clamp whenever the
// result set shrinks so the active page never points past the end.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Page returns the slice of results visible on the given 1-based page.
func Page(results []comicvine.Volume, page int) []comicvine.Volume {
	start := (page - 1) * PageSize
	if start < 0 || start >= len(results) {
		return nil
	}
	end := min(start+PageSize, len(results))
	return results[start:end]
}
