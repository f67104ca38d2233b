// Package imagestore provides collision-safe, content-deduplicating storage
// for downloaded images on top of gocloud.dev/blob.
//
// The package is storage-agnostic: a local directory (fileblob), an
// in-memory bucket (memblob, used in tests), or any registered bucket URL
// such as s3:// all work the same way.
//
// # Naming
//
// Object names are derived from the source URL's last path segment. When the
// segment is empty a name is synthesized from the content type
// (ubuntu_image.png, ubuntu_image.jpg, ...); when it lacks an extension one
// is appended based on the content type. Names that would overwrite an
// existing object are suffixed with an incrementing counter:
//
//	image.jpg, image_1.jpg, image_2.jpg, ...
//
// The exists-check and the subsequent write are not atomic against external
// mutation of the bucket; this tool targets single-process interactive use.
//
// # Deduplication
//
// [DedupRegistry] remembers the MD5 digest of every stored body for the
// lifetime of the process. [DedupRegistry.CheckAndRecord] treats lookup and
// insert as one critical section, so concurrent callers cannot both claim
// the same content as new. The registry is injected rather than global so
// tests can reset it between cases.
//
// # Usage
//
//	bucket, _ := fileblob.OpenBucket("Fetched_Images", &fileblob.Options{CreateDir: true})
//	store := imagestore.New(bucket, imagestore.NewDedupRegistry())
//
//	sum := imagestore.HashContent(body)
//	if !store.Dedup().CheckAndRecord(sum) {
//	    // already downloaded
//	}
//	name, err := store.Save(ctx, url, contentType, body)
package imagestore
