package fetcher

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Validation and download errors.
var (
	// ErrBadStatus is returned for any status code other than 200.
	ErrBadStatus = errors.New("fetcher: unexpected status code")

	// ErrNotAnImage is returned when the Content-Type header is missing or
	// does not declare an image.
	ErrNotAnImage = errors.New("fetcher: content type is not an image")

	// ErrTooLarge is returned when the declared or accumulated body size
	// exceeds the ceiling.
	ErrTooLarge = errors.New("fetcher: file too large")
)

// ValidateResponse checks a response descriptor against the size ceiling.
// Rules run in order and short-circuit on the first failure:
//
//  1. status must be exactly 200 (redirects are the transport's concern)
//  2. Content-Type must be present and start with "image/"
//  3. a parseable Content-Length must not exceed maxSize
//
// The Content-Length check is a fast path only; servers may omit or lie
// about it, so the streamed byte count remains authoritative.
func ValidateResponse(status int, header http.Header, maxSize int64) error {
	if status != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrBadStatus, status)
	}

	contentType := header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return fmt.Errorf("%w: %q", ErrNotAnImage, contentType)
	}

	if cl := header.Get("Content-Length"); cl != "" {
		if declared, err := strconv.ParseInt(cl, 10, 64); err == nil && declared > maxSize {
			return fmt.Errorf("%w: declared %d bytes, limit %d", ErrTooLarge, declared, maxSize)
		}
	}
	return nil
}
