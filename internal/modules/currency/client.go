// README: HTTP client for the exchangeratesapi-style latest-rates endpoint.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL   string
	accessKey string
	http      *http.Client
}

func NewClient(baseURL, accessKey string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		accessKey: accessKey,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchRates calls GET {base}/latest and decodes the rate table.
func (c *Client) FetchRates(ctx context.Context, base string, symbols []string) (Rates, error) {
	u, err := url.Parse(c.baseURL + "/latest")
	if err != nil {
		return Rates{}, fmt.Errorf("rates url: %w", err)
	}
	q := u.Query()
	if c.accessKey != "" {
		q.Set("access_key", c.accessKey)
	}
	q.Set("base", base)
	if len(symbols) > 0 {
		q.Set("symbols", strings.Join(symbols, ","))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Rates{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Rates{}, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Rates{}, fmt.Errorf("rates api returned %s", resp.Status)
	}

	var r Rates
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Rates{}, fmt.Errorf("decode rates: %w", err)
	}
	if r.Base == "" {
		r.Base = base
	}
	return r, nil
}
