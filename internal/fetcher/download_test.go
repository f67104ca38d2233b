package fetcher

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBoundedWithinLimit(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 20000)
	body, err := readBounded(bytes.NewReader(data), int64(len(data)), 1<<20, 8192)
	require.NoError(t, err)
	assert.Equal(t, data, body)
}

func TestReadBoundedExactLimit(t *testing.T) {
	data := bytes.Repeat([]byte{0x01}, 1024)
	body, err := readBounded(bytes.NewReader(data), -1, 1024, 256)
	require.NoError(t, err)
	assert.Len(t, body, 1024)
}

func TestReadBoundedOverLimit(t *testing.T) {
	data := bytes.Repeat([]byte{0x01}, 1025)
	_, err := readBounded(bytes.NewReader(data), -1, 1024, 256)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestReadBoundedIgnoresLyingSizeHint(t *testing.T) {
	// The hint claims a tiny body but the stream keeps going; only the
	// accumulated count matters.
	data := strings.Repeat("x", 4096)
	_, err := readBounded(strings.NewReader(data), 10, 2048, 512)
	assert.ErrorIs(t, err, ErrTooLarge)
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadBoundedPropagatesReadError(t *testing.T) {
	wantErr := errors.New("connection reset")
	_, err := readBounded(&failingReader{data: []byte("partial"), err: wantErr}, -1, 1024, 8)
	assert.ErrorIs(t, err, wantErr)
}

func TestReadBoundedEmptyBody(t *testing.T) {
	body, err := readBounded(io.MultiReader(), -1, 1024, 8)
	require.NoError(t, err)
	assert.Empty(t, body)
}
