// Package report renders fetch outcomes as console output.
//
// The fetcher produces structured [fetcher.Outcome] values; this package is
// the thin presentation layer that turns them into per-URL status lines and
// the closing batch summary. It holds no state beyond the output writer and
// the destination label.
package report
