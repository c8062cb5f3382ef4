package flickr

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/mmcdole/galleria/internal/config"
	"github.com/mmcdole/galleria/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Galleria/1.0"

	methodRecent = "flickr.photos.getRecent"
	methodSearch = "flickr.photos.search"

	// upper bound for a single image download
	maxImageBytes = 32 << 20
)

// Client implements domain.PhotoClient for the Flickr REST API
type Client struct {
	baseURL    string
	apiKey     string
	perPage    int
	extras     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Flickr API client
func NewClient(cfg config.FlickrConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	extras := cfg.Extras
	if extras == "" {
		extras = "url_s"
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		perPage: cfg.PerPage,
		extras:  extras,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// BuildURL returns the request URL for a descriptor. It does no I/O and
// always yields the same URL for the same descriptor.
func (c *Client) BuildURL(req domain.Request) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", c.baseURL, err)
	}

	query := u.Query()
	switch req.Kind {
	case domain.KindFeed:
		query.Set("method", methodRecent)
	case domain.KindSearch:
		query.Set("method", methodSearch)
		query.Set("text", req.Term)
	default:
		return "", fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidRequest, req.Kind)
	}

	query.Set("page", strconv.Itoa(req.PageOrDefault()))
	if c.perPage > 0 {
		query.Set("per_page", strconv.Itoa(c.perPage))
	}
	query.Set("extras", c.extras)
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")
	query.Set("nojsoncallback", "1")

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// Fetch issues one request for the descriptor and returns the flattened photo
// list. Every failure wraps domain.ErrNetwork; a cancelled ctx is also
// reachable through errors.Is(err, context.Canceled).
func (c *Client) Fetch(ctx context.Context, req domain.Request) ([]domain.Photo, domain.PageInfo, error) {
	reqURL, err := c.BuildURL(req)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}

	body, err := c.doRequest(ctx, reqURL, "application/json")
	if err != nil {
		return nil, domain.PageInfo{}, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}

	page, err := c.parseResponse(body)
	if err != nil {
		return nil, domain.PageInfo{}, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}

	photos, err := MapPhotos(page.Photo, c.logger)
	if err != nil {
		return nil, domain.PageInfo{}, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}

	return photos, MapPageInfo(page), nil
}

// FetchImage downloads the bytes behind an image URL
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	if imageURL == "" {
		return nil, errors.New("empty image url")
	}
	body, err := c.doRequest(ctx, imageURL, "image/*")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}
	return body, nil
}

// doRequest performs a GET and returns the decoded body
func (c *Client) doRequest(ctx context.Context, reqURL, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Encoding", "br, gzip")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("flickr request", "url", redact(reqURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("flickr request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	reader, err := decodeBody(resp)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	body, err := io.ReadAll(io.LimitReader(reader, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("flickr request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// decodeBody unwraps the Content-Encoding the server chose
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip body: %w", err)
		}
		return zr, nil
	case "", "identity":
		return io.NopCloser(resp.Body), nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", resp.Header.Get("Content-Encoding"))
	}
}

// parseResponse parses the JSON envelope and checks stat
func (c *Client) parseResponse(body []byte) (*photosPage, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Stat != "ok" {
		if resp.Stat == "fail" {
			return nil, &APIError{Code: resp.Code, Message: resp.Message}
		}
		return nil, fmt.Errorf("unexpected stat %q", resp.Stat)
	}
	if resp.Photos == nil {
		return nil, errors.New("response has no photos object")
	}
	if resp.Photos.Photo == nil {
		return nil, errors.New("response has no photos.photo list")
	}
	return resp.Photos, nil
}

// redact hides the api key in logged URLs
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
