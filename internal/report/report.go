package report

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Edrisabdella/Ubuntu-Requests/internal/fetcher"
)

// Printer renders fetch outcomes as human-readable console lines.
type Printer struct {
	out  io.Writer
	dest string
}

// NewPrinter creates a Printer writing to out. dest is the destination
// directory or bucket URL, used when rendering saved paths.
func NewPrinter(out io.Writer, dest string) *Printer {
	return &Printer{out: out, dest: dest}
}

// Welcome prints the startup banner.
func (p *Printer) Welcome() {
	fmt.Fprintln(p.out, "Welcome to the Ubuntu Image Fetcher")
	fmt.Fprintln(p.out, "A tool for mindfully collecting images from the web")
	fmt.Fprintln(p.out, "Ubuntu: 'I am because we are'")
	fmt.Fprintln(p.out, strings.Repeat("-", 50))
}

// Outcome prints one or two lines describing the result for a single URL.
func (p *Printer) Outcome(out fetcher.Outcome) {
	switch out.Status {
	case fetcher.StatusSaved:
		fmt.Fprintf(p.out, "✓ Successfully fetched: %s (%s)\n", out.Path, humanize.IBytes(uint64(out.Size)))
		fmt.Fprintf(p.out, "✓ Image saved to %s\n", p.savedPath(out.Path))
	case fetcher.StatusDuplicate:
		fmt.Fprintf(p.out, "⚠ Already downloaded: %s\n", out.URL)
	case fetcher.StatusRejected:
		switch out.Reason {
		case fetcher.ReasonUnsafeScheme:
			fmt.Fprintf(p.out, "✗ Unsafe URL scheme: %s\n", out.URL)
		case fetcher.ReasonTooLarge:
			fmt.Fprintf(p.out, "✗ File too large: %s\n", out.URL)
		default:
			fmt.Fprintf(p.out, "✗ Invalid response from %s\n", out.URL)
		}
	default:
		if out.Reason == fetcher.ReasonTransport {
			fmt.Fprintf(p.out, "✗ Connection error for %s: %v\n", out.URL, out.Err)
		} else {
			fmt.Fprintf(p.out, "✗ An error occurred with %s: %v\n", out.URL, out.Err)
		}
	}
}

// Summary prints the closing batch summary.
func (p *Printer) Summary(s fetcher.Summary) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, strings.Repeat("=", 50))
	fmt.Fprintf(p.out, "Download completed. %d of %d images fetched successfully.\n", s.Saved, s.Total)
	if s.Saved > 0 {
		fmt.Fprintln(p.out, "Connection strengthened. Community enriched.")
	}
	fmt.Fprintln(p.out, "Thank you for practicing Ubuntu.")
}

// savedPath joins the destination with the object name. Bucket URLs keep
// URL separators; plain directories use path joining.
func (p *Printer) savedPath(name string) string {
	if strings.Contains(p.dest, "://") {
		return strings.TrimSuffix(p.dest, "/") + "/" + name
	}
	return path.Join(p.dest, name)
}
