package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/Edrisabdella/Ubuntu-Requests/internal/config"
	"github.com/Edrisabdella/Ubuntu-Requests/internal/fetcher"
	fetchhttp "github.com/Edrisabdella/Ubuntu-Requests/internal/http"
	"github.com/Edrisabdella/Ubuntu-Requests/internal/report"
	"github.com/Edrisabdella/Ubuntu-Requests/pkg/imagestore"
)

// Exit codes
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitInvalidArgs      = 2
	ExitDestinationError = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ubuntu-fetch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to YAML configuration file")
	dest := fs.String("dest", "", "Destination directory or bucket URL (default: Fetched_Images)")
	timeout := fs.Duration("timeout", 0, "Per-request timeout (default: 15s)")
	maxSize := fs.String("max-size", "", "Maximum image size, e.g. 10MiB")
	userAgent := fs.String("user-agent", "", "User-Agent header sent with requests")
	verbose := fs.Bool("verbose", false, "Enable diagnostic logging")

	fs.Usage = func() {
		fmt.Fprintln(stderr, `Usage: ubuntu-fetch [options] [url ...]

Fetch images from the given URLs and save unique ones to the destination.
When no URLs are given on the command line, they are read interactively as
a comma-separated list.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFromFile(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return ExitInvalidArgs
		}
		cfg = loaded
	}
	if err := cfg.LoadFromEnv(); err != nil {
		fmt.Fprintf(stderr, "Error reading environment: %v\n", err)
		return ExitInvalidArgs
	}

	override := config.Config{
		Dest:      *dest,
		Timeout:   *timeout,
		UserAgent: *userAgent,
		Verbose:   *verbose,
	}
	if *maxSize != "" {
		size, err := humanize.ParseBytes(*maxSize)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid max size: %v\n", err)
			return ExitInvalidArgs
		}
		override.MaxFileSize = int64(size)
	}
	cfg = cfg.Merge(override)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitInvalidArgs
	}

	printer := report.NewPrinter(stdout, cfg.Dest)
	printer.Welcome()

	urls := fs.Args()
	if len(urls) == 0 {
		urls = promptURLs(stdin, stdout)
	}
	if len(urls) == 0 {
		fmt.Fprintln(stdout, "No URLs provided. Exiting.")
		return ExitSuccess
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(stderr, "\nReceived interrupt, shutting down...")
		cancel()
	}()

	// The destination must be usable before any URL is attempted; failing
	// here is the only error fatal to the whole run.
	bucket, err := openBucket(ctx, cfg.Dest)
	if err != nil {
		fmt.Fprintf(stderr, "✗ Cannot open destination %s: %v\n", cfg.Dest, err)
		return ExitDestinationError
	}
	defer bucket.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if cfg.Verbose {
		logger.SetOutput(stderr)
		logger.SetLevel(logrus.DebugLevel)
	}

	client := fetchhttp.NewClient(fetchhttp.Options{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	})
	store := imagestore.New(bucket, imagestore.NewDedupRegistry())
	f := fetcher.New(client, store, fetcher.Options{
		MaxFileSize: cfg.MaxFileSize,
		ChunkSize:   cfg.ChunkSize,
		Logger:      logger,
		OnOutcome:   printer.Outcome,
	})

	_, summary := f.FetchAll(ctx, urls)
	printer.Summary(summary)

	return ExitSuccess
}

// openBucket opens the destination. A plain path becomes a local directory
// (created if missing); anything with a scheme goes through the registered
// gocloud drivers.
func openBucket(ctx context.Context, dest string) (*blob.Bucket, error) {
	if strings.Contains(dest, "://") {
		return blob.OpenBucket(ctx, dest)
	}
	return fileblob.OpenBucket(dest, &fileblob.Options{
		CreateDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
}

// promptURLs reads a comma-separated list of URLs interactively.
func promptURLs(stdin io.Reader, stdout io.Writer) []string {
	fmt.Fprint(stdout, "Please enter image URL(s), separated by commas: ")
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil
	}
	return splitURLs(line)
}

// splitURLs splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitURLs(s string) []string {
	var urls []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
