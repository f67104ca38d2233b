package fetcher

import (
	"bytes"
	"fmt"
	"io"
)

// readBounded accumulates r into memory in chunkSize reads, aborting with
// ErrTooLarge the moment the total exceeds maxSize. sizeHint (typically the
// response's Content-Length) pre-sizes the buffer when plausible; it is
// never trusted for enforcement. On any error the partial buffer is
// discarded.
func readBounded(r io.Reader, sizeHint, maxSize int64, chunkSize int) ([]byte, error) {
	initial := int64(chunkSize)
	if sizeHint > 0 && sizeHint <= maxSize {
		initial = sizeHint
	}
	buf := bytes.NewBuffer(make([]byte, 0, initial))

	chunk := make([]byte, chunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if int64(buf.Len()) > maxSize {
				return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrTooLarge, maxSize)
			}
		}
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
