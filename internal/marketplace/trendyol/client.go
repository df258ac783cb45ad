// Package trendyol talks to Trendyol seller integration API.
package trendyol

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/MichalMitros/feed-importer/internal/fetcher"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"golang.org/x/time/rate"
)

// Marketplace is name of Trendyol marketplace connections.
const Marketplace = "trendyol"

// DefaultBaseURL is Trendyol API gateway.
const DefaultBaseURL = "https://apigw.trendyol.com"

// ErrUnauthorized is returned when Trendyol rejects connection's credentials.
var ErrUnauthorized = errors.New("trendyol rejected credentials")

// Brand is Trendyol brand.
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Category is Trendyol category tree node.
type Category struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	ParentID      int64      `json:"parentId"`
	SubCategories []Category `json:"subCategories"`
}

// Client is Trendyol API client of single seller.
type Client struct {
	fetcher   *fetcher.Fetcher
	limiter   *rate.Limiter
	baseURL   string
	sellerID  string
	apiKey    string
	apiSecret string
}

// CheckCredentials sends single request authorized with seller's credentials.
func (c *Client) CheckCredentials(ctx context.Context) error {
	path := fmt.Sprintf("/integration/product/sellers/%s/products", url.PathEscape(c.sellerID))
	query := url.Values{"page": {"0"}, "size": {"1"}}

	var products json.RawMessage
	if err := c.get(ctx, path, query, &products, fetcher.WithoutRetry()); err != nil {
		return fmt.Errorf("can't check credentials: %w", err)
	}

	return nil
}

// BrandsByName returns brands matching name.
func (c *Client) BrandsByName(ctx context.Context, name string) ([]Brand, error) {
	var brands []Brand
	if err := c.get(ctx, "/integration/product/brands/by-name", url.Values{"name": {name}}, &brands); err != nil {
		return nil, fmt.Errorf("can't get brands: %w", err)
	}

	return brands, nil
}

// Categories returns Trendyol category tree.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var resp struct {
		Categories []Category `json:"categories"`
	}
	if err := c.get(ctx, "/integration/product/product-categories", nil, &resp); err != nil {
		return nil, fmt.Errorf("can't get categories: %w", err)
	}

	return resp.Categories, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any, ops ...fetcher.CallOption) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("can't wait for rate limiter: %w", err)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("can't build http request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.sellerID+" - SelfIntegration")

	resp, err := c.fetcher.Do(ctx, req, ops...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return &fetcher.StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("can't decode response: %w", err)
	}

	return nil
}

// ClientFactory builds clients of marketplace connections.
// Clients of the same seller share rate limiter.
type ClientFactory struct {
	fetcher  *fetcher.Fetcher
	baseURL  string
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewClientFactory returns new ClientFactory. Each seller may send at most rps requests per second.
func NewClientFactory(f *fetcher.Fetcher, baseURL string, rps float64, burst int) *ClientFactory {
	return &ClientFactory{
		fetcher:  f,
		baseURL:  baseURL,
		limit:    rate.Limit(rps),
		burst:    max(burst, 1),
		limiters: make(map[string]*rate.Limiter),
	}
}

// Client returns client authorized with connection's credentials.
func (f *ClientFactory) Client(conn models.MarketplaceConnection) *Client {
	f.mu.Lock()
	limiter, ok := f.limiters[conn.SellerID]
	if !ok {
		limiter = rate.NewLimiter(f.limit, f.burst)
		f.limiters[conn.SellerID] = limiter
	}
	f.mu.Unlock()

	return &Client{
		fetcher:   f.fetcher,
		limiter:   limiter,
		baseURL:   f.baseURL,
		sellerID:  conn.SellerID,
		apiKey:    conn.APIKey,
		apiSecret: conn.APISecret,
	}
}
