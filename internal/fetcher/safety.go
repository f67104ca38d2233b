package fetcher

import (
	"net/url"
	"strings"
)

// IsSafeURL reports whether rawURL uses a permitted scheme (http or https,
// case-insensitively). Malformed URLs are unsafe, not errors.
func IsSafeURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	}
	return false
}
