// Package fetcher implements the fetch-validate-dedup-persist pipeline.
//
// For each URL the pipeline runs these stages in order, short-circuiting
// on the first failure:
//
//  1. Scheme safety check (http/https only) — no network call otherwise
//  2. Streamed GET via the internal HTTP client
//  3. Response validation: status 200, image/* content type, declared
//     Content-Length within the size ceiling
//  4. Bounded body accumulation: fixed-size chunks, aborted the moment the
//     accumulated length exceeds the ceiling (the authoritative check;
//     Content-Length is advisory)
//  5. Content-hash deduplication against the store's registry
//  6. Collision-safe persist through pkg/imagestore
//
// Every stage failure is contained to its URL and converted into an
// [Outcome]; the batch continues and ends with a [Summary]. URLs are
// processed sequentially, preserving input order.
package fetcher
