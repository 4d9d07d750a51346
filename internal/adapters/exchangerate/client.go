package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/fx_desk/internal/apperrors"
	"github.com/SscSPs/fx_desk/internal/core/domain"
	"github.com/SscSPs/fx_desk/internal/core/ports"
)

// DefaultBaseURL is the public ExchangeRate-API "latest" endpoint.
const DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest"

const maxBodyBytes = 1 << 20

// latestResponse is the payload of GET {base URL}/{base currency}.
type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Client fetches rates from ExchangeRate-API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.RateSource = (*Client)(nil)

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a Client that uses the given http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// FetchQuotes requests every rate quoted against base.
func (c *Client) FetchQuotes(ctx context.Context, base string) (*domain.RateQuotes, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(strings.ToUpper(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", apperrors.ErrRateSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "fx-desk/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", apperrors.ErrRateSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: rate API returned status %d", apperrors.ErrRateSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", apperrors.ErrRateSourceUnavailable, err)
	}

	var payload latestResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", apperrors.ErrRateSourceUnavailable, err)
	}
	if payload.Rates == nil {
		return nil, fmt.Errorf("%w: response has no rates", apperrors.ErrRateSourceUnavailable)
	}

	return &domain.RateQuotes{
		Base:  payload.Base,
		Date:  payload.Date,
		Rates: payload.Rates,
	}, nil
}
