package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/f3rmion/brandwatch/internal/brand"
)

const defaultTimeout = 10 * time.Second

// HTTP is a client for a brandwatch backend.
type HTTP struct {
	baseURL    string
	httpClient *http.Client
}

// errorResponse is the error body returned by the backend.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTP creates a client for the backend at baseURL.
func NewHTTP(baseURL string) (*HTTP, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("backend endpoint not set")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parsing endpoint: %w", err)
	}

	return &HTTP{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// Fetch requests the sentiment counts for brandName from the backend.
func (c *HTTP) Fetch(ctx context.Context, brandName string) (brand.Result, error) {
	// "+" is escaped too; the server unescapes path values with query rules.
	segment := strings.ReplaceAll(url.PathEscape(brandName), "+", "%2B")
	endpoint := fmt.Sprintf("%s/api/brands/%s/sentiment", c.baseURL, segment)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return brand.Result{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return brand.Result{}, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return brand.Result{}, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return brand.Result{}, fmt.Errorf("%s: %w", brandName, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return brand.Result{}, fmt.Errorf("API error: %s", apiErr.Error)
		}
		return brand.Result{}, fmt.Errorf("API error: %s", resp.Status)
	}

	var result brand.Result
	if err := json.Unmarshal(body, &result); err != nil {
		return brand.Result{}, fmt.Errorf("unmarshaling response: %w", err)
	}

	return result, nil
}
