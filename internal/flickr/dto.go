package flickr

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mmcdole/galleria/internal/domain"
)

// response is the envelope of flickr.photos.getRecent and flickr.photos.search
// with format=json&nojsoncallback=1
type response struct {
	Photos  *photosPage `json:"photos"`
	Stat    string      `json:"stat"`              // "ok" or "fail"
	Code    int         `json:"code,omitempty"`    // set when stat is "fail"
	Message string      `json:"message,omitempty"` // set when stat is "fail"
}

// photosPage is the "photos" object; Photo stays nil when the key is absent
type photosPage struct {
	Page    flexInt        `json:"page"`
	Pages   flexInt        `json:"pages"`
	PerPage flexInt        `json:"perpage"`
	Total   flexInt        `json:"total"`
	Photo   []domain.Photo `json:"photo"`
}

// flexInt accepts a JSON number or a numeric string; Flickr has sent both for total
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = 0
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", s, err)
		}
		*n = flexInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = flexInt(v)
	return nil
}

// APIError is a stat=fail reply from the API
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("flickr error %d: %s", e.Code, e.Message)
}
