package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/shohin/internal/metrics"
	"github.com/hyperjump/shohin/pkg/utils"
)

var (
	// ErrPlaceholder is returned when a reference resolves to the placeholder image.
	ErrPlaceholder = errors.New("image reference resolves to placeholder")
	// ErrNotImage is returned when the remote content type is not an image.
	ErrNotImage = errors.New("remote content is not an image")
)

const defaultMaxBytes = 5 << 20

// Fetcher downloads product images through a cache.
type Fetcher struct {
	resolver *Resolver
	client   *http.Client
	cache    Cache
	maxBytes int64
	logger   *zap.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithCache sets the image cache. Without one, every Fetch goes to the network.
func WithCache(c Cache) FetcherOption {
	return func(f *Fetcher) { f.cache = c }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) { f.client = c }
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if d > 0 {
			f.client = &http.Client{Timeout: d}
		}
	}
}

// WithMaxBytes limits the size of a fetched image.
func WithMaxBytes(n int64) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBytes = n
		}
	}
}

// WithLogger sets the logger for the fetcher.
func WithLogger(l *zap.Logger) FetcherOption {
	return func(f *Fetcher) { f.logger = l }
}

// NewFetcher creates a Fetcher resolving references with resolver.
func NewFetcher(resolver *Resolver, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		resolver: resolver,
		client:   &http.Client{Timeout: 10 * time.Second},
		maxBytes: defaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = utils.OrNop(f.logger)
	return f
}

// Resolver returns the fetcher's resolver.
func (f *Fetcher) Resolver() *Resolver { return f.resolver }

// Fetch resolves ref and returns the image, from cache when possible.
func (f *Fetcher) Fetch(ctx context.Context, ref string) (*Image, error) {
	url := f.resolver.Normalize(ref)
	if f.resolver.IsPlaceholder(url) {
		return nil, ErrPlaceholder
	}

	if f.cache != nil {
		img, err := f.cache.Get(ctx, url)
		if err == nil {
			metrics.ObserveImageCache(true)
			return img, nil
		}
		metrics.ObserveImageCache(false)
		if !errors.Is(err, ErrCacheMiss) {
			f.logger.Warn("image cache get failed", zap.String("url", url), zap.Error(err))
		}
	}

	img, err := f.download(ctx, url)
	metrics.ObserveImageFetch(err)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		if err := f.cache.Set(ctx, url, img); err != nil {
			f.logger.Warn("image cache set failed", zap.String("url", url), zap.Error(err))
		}
	}
	return img, nil
}

func (f *Fetcher) download(ctx context.Context, url string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch image %s: status %d", url, resp.StatusCode)
	}
	contentType := resp.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("%w: %q", ErrNotImage, contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", url, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("image %s exceeds %d bytes", url, f.maxBytes)
	}
	return &Image{Data: data, ContentType: contentType}, nil
}
