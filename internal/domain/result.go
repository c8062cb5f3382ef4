package domain

// Source tells where a LoadResult's records came from
type Source string

const (
	SourceNetwork Source = "network"
	SourceCache   Source = "cache"
)

// PageInfo carries the upstream pagination envelope. Zero on cache results.
type PageInfo struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"perpage"`
	Total   int `json:"total"`
}

// HasNext reports whether the upstream advertised a later page
func (p PageInfo) HasNext() bool {
	return p.Pages == 0 || p.Page < p.Pages
}

// LoadResult is what the loader hands back to its caller
type LoadResult struct {
	Records []Photo  `json:"records"`
	Source  Source   `json:"source,omitempty"`
	Stale   bool     `json:"stale"`
	Page    PageInfo `json:"page"`
}

// EmptyResult is the outcome when the fetch failed and nothing was cached
func EmptyResult() LoadResult {
	return LoadResult{Records: []Photo{}}
}

// IsEmptyResult reports whether the result carries no source at all.
// An empty network success is not an EmptyResult.
func (r LoadResult) IsEmptyResult() bool {
	return r.Source == ""
}
