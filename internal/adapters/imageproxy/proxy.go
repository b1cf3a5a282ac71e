// Package imageproxy resolves raw image URLs into stable reference URLs the
// renderer can dereference. Resolution never fails: anything unusable maps
// to a fixed transparent placeholder.
package imageproxy

import (
	"net/url"

	"github.com/okian/scorecard/internal/domain/card"
)

// PlaceholderURL is a 1x1 transparent GIF served when a source image
// reference is missing or malformed.
const PlaceholderURL = "data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7"

// Proxy rewrites source URLs through a proxy endpoint. With an empty base
// it passes valid URLs through untouched.
type Proxy struct {
	base string
}

// New creates a Proxy. base is the proxy endpoint, e.g. "https://p.example/img".
func New(base string) *Proxy {
	return &Proxy{base: base}
}

// Resolve implements card.ImageResolver.
func (p *Proxy) Resolve(kind card.ImageKind, src string) string {
	u, err := url.Parse(src)
	if err != nil || src == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return PlaceholderURL
	}
	if p.base == "" {
		return src
	}
	q := url.Values{}
	q.Set("kind", string(kind))
	q.Set("url", src)
	return p.base + "?" + q.Encode()
}
