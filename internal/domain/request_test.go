package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"feed page 1", FeedRequest(1), false},
		{"feed page 0", FeedRequest(0), true},
		{"feed negative page", FeedRequest(-3), true},
		{"search term", SearchRequest("cat"), false},
		{"search blank term", SearchRequest("   "), true},
		{"search with page", Request{Kind: KindSearch, Term: "cat", Page: 2}, false},
		{"unknown kind", Request{Kind: "popular", Page: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestString(t *testing.T) {
	assert.Equal(t, "feed page 3", FeedRequest(3).String())
	assert.Equal(t, `search "cat" page 1`, SearchRequest("cat").String())
}

func TestEmptyResult(t *testing.T) {
	r := EmptyResult()
	assert.True(t, r.IsEmptyResult())
	assert.Empty(t, r.Records)

	ok := LoadResult{Records: []Photo{}, Source: SourceNetwork}
	assert.False(t, ok.IsEmptyResult())
}

func TestPageInfoHasNext(t *testing.T) {
	assert.True(t, PageInfo{Page: 1, Pages: 5}.HasNext())
	assert.False(t, PageInfo{Page: 5, Pages: 5}.HasNext())
	assert.True(t, PageInfo{}.HasNext())
}
