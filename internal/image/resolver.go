// Package image turns catalog image references into fetchable URLs and serves
// the images through a bounded cache.
package image

import "strings"

// DefaultPlaceholder is shown for products without a usable image.
const DefaultPlaceholder = "https://via.placeholder.com/150"

// Resolver normalizes raw image references.
type Resolver struct {
	placeholder string
}

// NewResolver returns a Resolver that falls back to placeholder, or to
// DefaultPlaceholder when placeholder is empty.
func NewResolver(placeholder string) *Resolver {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Resolver{placeholder: placeholder}
}

// Placeholder returns the fallback URL.
func (r *Resolver) Placeholder() string { return r.placeholder }

// Normalize returns one displayable URL for ref. Bracketed lists such as
// `["http://a.jpg", "http://b.jpg"]` yield their first entry, plain http is
// upgraded to https, and empty input gives the placeholder.
func (r *Resolver) Normalize(ref string) string {
	url := strings.TrimSpace(ref)
	if strings.HasPrefix(url, "[") {
		url = strings.NewReplacer("[", "", "]", "", `"`, "", "'", "").Replace(url)
		url, _, _ = strings.Cut(url, ",")
		url = strings.TrimSpace(url)
	}
	if url == "" {
		return r.placeholder
	}
	if strings.HasPrefix(url, "http://") {
		url = "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}

// IsPlaceholder reports whether url is the fallback image.
func (r *Resolver) IsPlaceholder(url string) bool {
	return url == r.placeholder
}
