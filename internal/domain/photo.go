package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// staticHost serves photo renditions when the url_s extra is missing
const staticHost = "https://live.staticflickr.com"

// Photo is a single photo's metadata as returned by the upstream service.
// The JSON object it was decoded from is kept verbatim so fields this
// package does not know about survive a cache round trip untouched.
type Photo struct {
	ID       string // Stable identifier, used as the list key
	ImageURL string // Small/medium rendition
	Title    string
	Owner    string

	raw json.RawMessage
}

// photoWire mirrors the upstream field names
type photoWire struct {
	ID     json.RawMessage `json:"id"`
	URL    string          `json:"url_s,omitempty"`
	Title  string          `json:"title,omitempty"`
	Owner  string          `json:"owner,omitempty"`
	Server string          `json:"server,omitempty"`
	Secret string          `json:"secret,omitempty"`
}

// UnmarshalJSON decodes a photo object and retains its raw bytes.
func (p *Photo) UnmarshalJSON(data []byte) error {
	var w photoWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	id, err := decodeID(w.ID)
	if err != nil {
		return err
	}

	p.ID = id
	p.Title = w.Title
	p.Owner = w.Owner
	p.ImageURL = w.URL
	if p.ImageURL == "" && w.Server != "" && w.Secret != "" && id != "" {
		p.ImageURL = fmt.Sprintf("%s/%s/%s_%s_m.jpg", staticHost, w.Server, id, w.Secret)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	p.raw = compact.Bytes()
	return nil
}

// MarshalJSON returns the original upstream object when there is one.
func (p Photo) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	id, err := json.Marshal(p.ID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(photoWire{
		ID:    id,
		URL:   p.ImageURL,
		Title: p.Title,
		Owner: p.Owner,
	})
}

// DisplayTitle returns the title, or the ID for untitled photos
func (p Photo) DisplayTitle() string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	return "#" + p.ID
}

// decodeID accepts the id as a JSON string or number. Absent ids decode to "".
func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("invalid photo id %s: %w", string(raw), err)
	}
	return n.String(), nil
}

// EncodePhotos serializes records the way the snapshot stores them
func EncodePhotos(photos []Photo) ([]byte, error) {
	if photos == nil {
		photos = []Photo{}
	}
	return json.Marshal(photos)
}

// DecodePhotos parses a serialized snapshot
func DecodePhotos(data []byte) ([]Photo, error) {
	var photos []Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil, err
	}
	if photos == nil {
		photos = []Photo{}
	}
	return photos, nil
}
