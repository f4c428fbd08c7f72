package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quietform/meditation-match/pkg/cache"
)

// httpCacheKey namespaces cached snapshots per URL.
const httpCacheKey = "catalog:"

// HTTPProvider fetches a catalog snapshot from a remote JSON endpoint.
// Successful fetches are cached with a TTL so repeated import sessions do
// not hammer the catalog host.
type HTTPProvider struct {
	url      string
	client   *http.Client
	cache    cache.Cache
	cacheTTL time.Duration
}

// HTTPProviderOption is a functional option for HTTPProvider.
type HTTPProviderOption func(*HTTPProvider)

// WithHTTPClient sets the HTTP client used for fetches.
func WithHTTPClient(client *http.Client) HTTPProviderOption {
	return func(p *HTTPProvider) {
		p.client = client
	}
}

// WithSnapshotCache sets the cache backend and TTL for fetched snapshots.
func WithSnapshotCache(c cache.Cache, ttl time.Duration) HTTPProviderOption {
	return func(p *HTTPProvider) {
		p.cache = c
		p.cacheTTL = ttl
	}
}

// NewHTTPProvider creates a provider fetching the given catalog URL.
func NewHTTPProvider(url string, opts ...HTTPProviderOption) *HTTPProvider {
	p := &HTTPProvider{
		url:      url,
		client:   &http.Client{Timeout: 30 * time.Second},
		cache:    cache.NewNullCache(),
		cacheTTL: time.Hour,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider name.
func (*HTTPProvider) Name() string {
	return "http"
}

// Fetch resolves the catalog, serving from cache when a fresh snapshot is
// available.
func (p *HTTPProvider) Fetch(ctx context.Context) (Catalog, error) {
	if cached, ok := p.cache.Get(ctx, httpCacheKey+p.url); ok {
		if c, ok := cached.(Catalog); ok {
			return c, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Op: "request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Op: "fetch", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			Provider: p.Name(),
			Op:       "fetch",
			Err:      fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Op: "read", Err: err}
	}

	c, err := ParseDocument(data)
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Op: "parse", Err: err}
	}

	p.cache.Set(ctx, httpCacheKey+p.url, c, p.cacheTTL)
	return c, nil
}

func init() {
	Register("http", func(options map[string]any) (Provider, error) {
		url, ok := options["url"].(string)
		if !ok || url == "" {
			return nil, fmt.Errorf("%w: http provider requires a url option",
				ErrProviderUnavailable)
		}
		return NewHTTPProvider(url), nil
	})
}
