package domain

import (
	"fmt"
	"strings"
)

// RequestKind selects the upstream listing
type RequestKind string

const (
	KindFeed   RequestKind = "feed"
	KindSearch RequestKind = "search"
)

// Request describes what to fetch: a feed page or a search term.
type Request struct {
	Kind RequestKind `json:"kind"`
	Page int         `json:"page,omitempty"`
	Term string      `json:"term,omitempty"`
}

// FeedRequest returns a descriptor for the given feed page
func FeedRequest(page int) Request {
	return Request{Kind: KindFeed, Page: page}
}

// SearchRequest returns a descriptor for a text search
func SearchRequest(term string) Request {
	return Request{Kind: KindSearch, Term: term}
}

// PageOrDefault returns the page to request, treating an unset page as 1
func (r Request) PageOrDefault() int {
	if r.Page == 0 {
		return 1
	}
	return r.Page
}

// Validate checks the descriptor shape. The loader does not call it; it is
// for callers turning user input into requests.
func (r Request) Validate() error {
	switch r.Kind {
	case KindFeed:
		if r.Page < 1 {
			return fmt.Errorf("%w: feed page must be >= 1, got %d", ErrInvalidRequest, r.Page)
		}
	case KindSearch:
		if strings.TrimSpace(r.Term) == "" {
			return fmt.Errorf("%w: search term is empty", ErrInvalidRequest)
		}
		if r.Page < 0 {
			return fmt.Errorf("%w: search page must be >= 1, got %d", ErrInvalidRequest, r.Page)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, r.Kind)
	}
	return nil
}

// String returns a short human-readable description (used in logs and the UI)
func (r Request) String() string {
	if r.Kind == KindSearch {
		return fmt.Sprintf("search %q page %d", r.Term, r.PageOrDefault())
	}
	return fmt.Sprintf("feed page %d", r.PageOrDefault())
}
