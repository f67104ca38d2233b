package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitURLs(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"http://a.test/1.png", []string{"http://a.test/1.png"}},
		{"http://a.test/1.png, http://b.test/2.png", []string{"http://a.test/1.png", "http://b.test/2.png"}},
		{"  http://a.test/1.png ,, ,http://b.test/2.png\n", []string{"http://a.test/1.png", "http://b.test/2.png"}},
		{"", nil},
		{" , ,\n", nil},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, splitURLs(tc.input), "input %q", tc.input)
	}
}

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("png bytes for a"))
		case "/page.html":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunFetchesToDirectory(t *testing.T) {
	server := newImageServer(t)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run(
		[]string{"-dest", dir, server.URL + "/a.png", "ftp://example.test/b.jpg", server.URL + "/a.png"},
		strings.NewReader(""), &stdout, &stderr,
	)
	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Welcome to the Ubuntu Image Fetcher")
	assert.Contains(t, out, "✓ Successfully fetched: a.png")
	assert.Contains(t, out, "✗ Unsafe URL scheme: ftp://example.test/b.jpg")
	assert.Contains(t, out, "⚠ Already downloaded:")
	assert.Contains(t, out, "Download completed. 1 of 3 images fetched successfully.")

	saved, err := os.ReadFile(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png bytes for a", string(saved))
}

func TestRunPromptsWhenNoArgs(t *testing.T) {
	server := newImageServer(t)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader(server.URL + "/a.png\n")
	code := run([]string{"-dest", dir}, stdin, &stdout, &stderr)

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout.String(), "Please enter image URL(s), separated by commas:")
	assert.Contains(t, stdout.String(), "Download completed. 1 of 1 images fetched successfully.")
}

func TestRunNoURLs(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-dest", dir}, strings.NewReader("\n"), &stdout, &stderr)

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout.String(), "No URLs provided. Exiting.")
}

func TestRunDestinationError(t *testing.T) {
	// A regular file in place of the destination directory is fatal before
	// any URL is attempted.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	server := newImageServer(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-dest", blocker, server.URL + "/a.png"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, ExitDestinationError, code)
	assert.Contains(t, stderr.String(), "Cannot open destination")
}

func TestRunInvalidFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-max-size", "lots"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, ExitInvalidArgs, code)

	code = run([]string{"-unknown-flag"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, ExitInvalidArgs, code)
}

func TestRunRejectsNonImage(t *testing.T) {
	server := newImageServer(t)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-dest", dir, server.URL + "/page.html"}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout.String(), "✗ Invalid response from")
	assert.Contains(t, stdout.String(), "Download completed. 0 of 1 images fetched successfully.")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected responses must not leave files behind")
}
