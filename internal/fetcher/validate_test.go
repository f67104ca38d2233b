package fetcher

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLimit = 10 * 1024 * 1024

func imageHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "image/png")
	return h
}

func TestValidateResponseAccepts200Image(t *testing.T) {
	require.NoError(t, ValidateResponse(200, imageHeader(), testLimit))
}

func TestValidateResponseBadStatus(t *testing.T) {
	for _, status := range []int{201, 301, 302, 404, 500} {
		err := ValidateResponse(status, imageHeader(), testLimit)
		assert.ErrorIs(t, err, ErrBadStatus, "status %d", status)
	}
}

func TestValidateResponseContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantErr     error
	}{
		{"missing", "", ErrNotAnImage},
		{"html", "text/html", ErrNotAnImage},
		{"octet-stream", "application/octet-stream", ErrNotAnImage},
		{"image", "image/jpeg", nil},
		{"image upper-case", "IMAGE/PNG", nil},
		{"image with parameters", "image/svg+xml; charset=utf-8", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := http.Header{}
			if tc.contentType != "" {
				h.Set("Content-Type", tc.contentType)
			}
			err := ValidateResponse(200, h, testLimit)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateResponseDeclaredLength(t *testing.T) {
	h := imageHeader()
	h.Set("Content-Length", "1024")
	assert.NoError(t, ValidateResponse(200, h, testLimit))

	h.Set("Content-Length", "10485761") // one byte over
	assert.ErrorIs(t, ValidateResponse(200, h, testLimit), ErrTooLarge)

	// An unparsable declared length is ignored; streaming enforces the limit.
	h.Set("Content-Length", "not-a-number")
	assert.NoError(t, ValidateResponse(200, h, testLimit))
}

func TestValidateResponseChecksStatusFirst(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "text/html")
	err := ValidateResponse(500, h, testLimit)
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.NotErrorIs(t, err, ErrNotAnImage)
}
