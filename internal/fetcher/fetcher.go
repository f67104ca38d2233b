package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	fetchhttp "github.com/Edrisabdella/Ubuntu-Requests/internal/http"
	"github.com/Edrisabdella/Ubuntu-Requests/pkg/imagestore"
)

// Defaults for the pipeline.
const (
	// DefaultMaxFileSize is the hard body-size ceiling: 10 MiB.
	DefaultMaxFileSize = 10 * 1024 * 1024

	// DefaultChunkSize is the read size used while streaming bodies.
	DefaultChunkSize = 8192
)

// Status classifies the terminal state of one URL's processing.
type Status int

const (
	// StatusSaved means the image was downloaded and persisted.
	StatusSaved Status = iota
	// StatusRejected means a policy check failed (scheme, validation, size).
	StatusRejected
	// StatusDuplicate means byte-identical content was already stored.
	StatusDuplicate
	// StatusFailed means a transport, filesystem, or unclassified fault.
	StatusFailed
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusSaved:
		return "saved"
	case StatusRejected:
		return "rejected"
	case StatusDuplicate:
		return "duplicate"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Reason names the failure category carried by non-saved outcomes.
type Reason string

const (
	ReasonUnsafeScheme    Reason = "unsafe URL scheme"
	ReasonInvalidResponse Reason = "invalid response"
	ReasonTooLarge        Reason = "file too large"
	ReasonDuplicate       Reason = "duplicate content"
	ReasonTransport       Reason = "connection error"
	ReasonFilesystem      Reason = "storage error"
	ReasonUnknown         Reason = "unexpected error"
)

// Outcome is the immutable result of processing one URL.
type Outcome struct {
	URL    string
	Status Status
	Path   string // object name, set when Status == StatusSaved
	Size   int64  // body size in bytes, set when Status == StatusSaved
	Reason Reason // set for every non-saved status
	Err    error  // underlying cause, when one exists
}

// Summary aggregates a batch.
type Summary struct {
	Saved int
	Total int
}

// Summarize derives a Summary from a batch of outcomes.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, out := range outcomes {
		if out.Status == StatusSaved {
			s.Saved++
		}
	}
	return s
}

// Options configures the pipeline.
type Options struct {
	// MaxFileSize is the body-size ceiling in bytes.
	// Default: DefaultMaxFileSize
	MaxFileSize int64

	// ChunkSize is the read size used while streaming bodies.
	// Default: DefaultChunkSize
	ChunkSize int

	// Logger receives stage-level diagnostics. Default: discard.
	Logger logrus.FieldLogger

	// OnOutcome, when set, is invoked with each outcome as it is produced.
	OnOutcome func(Outcome)
}

// Fetcher runs the pipeline. URLs are processed one at a time; the only
// state shared across URLs is the store's dedup registry.
type Fetcher struct {
	client *fetchhttp.Client
	store  *imagestore.Store
	opts   Options
}

// New creates a Fetcher. Zero option fields are filled with defaults.
func New(client *fetchhttp.Client, store *imagestore.Store, opts Options) *Fetcher {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	return &Fetcher{client: client, store: store, opts: opts}
}

// FetchAll processes every URL in order and returns the per-URL outcomes
// with an aggregate summary. Failures never abort the batch.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) ([]Outcome, Summary) {
	outcomes := make([]Outcome, 0, len(urls))
	for _, rawURL := range urls {
		out := f.Fetch(ctx, rawURL)
		if f.opts.OnOutcome != nil {
			f.opts.OnOutcome(out)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, Summarize(outcomes)
}

// Fetch processes a single URL to a terminal outcome. No fault escapes:
// panics during processing are converted to a failed outcome.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{
				URL:    rawURL,
				Status: StatusFailed,
				Reason: ReasonUnknown,
				Err:    fmt.Errorf("panic: %v", r),
			}
		}
	}()

	log := f.opts.Logger.WithField("url", rawURL)

	if !IsSafeURL(rawURL) {
		log.Warn("rejected: unsafe URL scheme")
		return Outcome{URL: rawURL, Status: StatusRejected, Reason: ReasonUnsafeScheme}
	}

	resp, err := f.client.Get(ctx, rawURL)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return Outcome{URL: rawURL, Status: StatusFailed, Reason: ReasonTransport, Err: err}
	}
	defer resp.Body.Close()

	if err := ValidateResponse(resp.StatusCode, resp.Header, f.opts.MaxFileSize); err != nil {
		log.WithError(err).Warn("rejected: response validation")
		reason := ReasonInvalidResponse
		if errors.Is(err, ErrTooLarge) {
			reason = ReasonTooLarge
		}
		return Outcome{URL: rawURL, Status: StatusRejected, Reason: reason, Err: err}
	}

	body, err := readBounded(resp.Body, resp.ContentLength, f.opts.MaxFileSize, f.opts.ChunkSize)
	if err != nil {
		if errors.Is(err, ErrTooLarge) {
			log.WithError(err).Warn("rejected: body over size ceiling")
			return Outcome{URL: rawURL, Status: StatusRejected, Reason: ReasonTooLarge, Err: err}
		}
		log.WithError(err).Warn("body read failed")
		return Outcome{URL: rawURL, Status: StatusFailed, Reason: ReasonTransport, Err: err}
	}

	if !f.store.Dedup().CheckAndRecord(imagestore.HashContent(body)) {
		log.Debug("duplicate content")
		return Outcome{URL: rawURL, Status: StatusDuplicate, Reason: ReasonDuplicate}
	}

	name, err := f.store.Save(ctx, rawURL, resp.Header.Get("Content-Type"), body)
	if err != nil {
		log.WithError(err).Error("persist failed")
		return Outcome{URL: rawURL, Status: StatusFailed, Reason: ReasonFilesystem, Err: err}
	}

	log.WithField("name", name).Debug("saved")
	return Outcome{URL: rawURL, Status: StatusSaved, Path: name, Size: int64(len(body))}
}
