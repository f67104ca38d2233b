// Package http provides the HTTP client used to fetch images.
//
// This package handles:
//   - Streamed GET requests (the body is consumed by the caller in chunks)
//   - A fixed identifying User-Agent header
//   - A hard per-request timeout
//
// It intentionally does not retry, follow a custom redirect policy, or
// inspect status codes: response validation is the fetcher's concern, and
// the transport's default redirect handling applies.
//
// # Usage
//
//	client := http.NewClient(http.Options{
//	    Timeout:   15 * time.Second,
//	    UserAgent: http.DefaultUserAgent,
//	})
//
//	resp, err := client.Get(ctx, url)
//	if err != nil {
//	    // transport failure: DNS, TLS, refused connection, timeout
//	}
//	defer resp.Body.Close()
//	// resp.StatusCode, resp.Header, resp.Body
package http
