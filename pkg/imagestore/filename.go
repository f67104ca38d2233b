package imagestore

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// fallbackName is used when the URL path carries no usable segment.
const fallbackName = "ubuntu_image"

// extensions maps bare MIME types to file extensions. Parameters
// (e.g. "; charset=...") are not handled; callers pass the lowered type.
var extensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/bmp":     ".bmp",
	"image/tiff":    ".tiff",
}

// ExtensionFor maps a MIME content type to a file extension. Unknown types
// fall back to ".jpg", which is lossy but always yields a usable name.
func ExtensionFor(contentType string) string {
	if ext, ok := extensions[strings.ToLower(contentType)]; ok {
		return ext
	}
	return ".jpg"
}

// ResolveName derives an object name from the source URL and content type,
// then resolves collisions by suffixing an incrementing counter until exists
// reports a free name. The check-then-write sequence is not atomic against
// concurrent bucket mutation.
func ResolveName(rawURL, contentType string, exists func(string) (bool, error)) (string, error) {
	name := baseName(rawURL)
	if name == "" {
		name = fallbackName + ExtensionFor(contentType)
	} else if path.Ext(name) == "" {
		name += ExtensionFor(contentType)
	}

	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := name
	for counter := 1; ; counter++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("check existing name %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d%s", base, counter, ext)
	}
}

// baseName extracts the last path segment of rawURL. A trailing slash or an
// unparsable URL yields the empty string.
func baseName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	p := u.Path
	return p[strings.LastIndex(p, "/")+1:]
}
