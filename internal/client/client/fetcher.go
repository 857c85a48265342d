package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/randomusers/internal/client/models"
)

const (
	// DefaultBaseURL is the randomuser.me endpoint the client was built
	// against. Newer API versions may change the payload.
	DefaultBaseURL = "https://randomuser.me/api/1.3/"

	DefaultTimeout = 10 * time.Second

	// MaxResponseSize caps the body we are willing to decode (10MB).
	MaxResponseSize = 10 * 1024 * 1024

	UserAgent = "randomusers-client/1.0"

	// includedFields limits the payload to what the client displays.
	includedFields = "name,picture,gender,location,email,phone,cell"
)

// pageResponse is the envelope returned by the API. On failure the API
// answers with an "error" field instead of results.
type pageResponse struct {
	Results []models.User `json:"results"`
	Error   string        `json:"error"`
}

// HTTPFetcher implements Fetcher over plain HTTP GET requests.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher returns a fetcher for baseURL. A zero timeout means
// DefaultTimeout.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// PageURL builds the request URL for req. It fails with ErrUnreachable when
// the base URL is not an absolute http(s) address.
func (f *HTTPFetcher) PageURL(req models.PageRequest) (string, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: invalid base url %q", ErrUnreachable, f.baseURL)
	}

	q := u.Query()
	q.Set("inc", includedFields)
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("results", strconv.Itoa(req.Results))
	q.Set("seed", req.Seed)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// FetchPage downloads and decodes one page.
func (f *HTTPFetcher) FetchPage(ctx context.Context, req models.PageRequest) ([]models.User, error) {
	pageURL, err := f.PageURL(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnreachable, err)
	}
	httpReq.Header.Set("User-Agent", UserAgent)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrServerError, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", ErrMalformedResponse, err)
	}
	if len(body) > MaxResponseSize {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", ErrMalformedResponse, MaxResponseSize)
	}

	var page pageResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if page.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrServerError, page.Error)
	}
	if page.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrMalformedResponse)
	}

	return page.Results, nil
}
