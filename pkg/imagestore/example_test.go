package imagestore_test

import (
	"context"
	"fmt"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"

	"github.com/Edrisabdella/Ubuntu-Requests/pkg/imagestore"
)

func Example() {
	ctx := context.Background()
	bucket, _ := blob.OpenBucket(ctx, "mem://")
	defer bucket.Close()

	store := imagestore.New(bucket, imagestore.NewDedupRegistry())

	body := []byte("fake png bytes")
	if store.Dedup().CheckAndRecord(imagestore.HashContent(body)) {
		name, _ := store.Save(ctx, "https://example.com/photos/sunset.png", "image/png", body)
		fmt.Println("saved as", name)
	}

	// The same bytes fetched from another URL are duplicates.
	if !store.Dedup().CheckAndRecord(imagestore.HashContent(body)) {
		fmt.Println("already downloaded")
	}

	// Output:
	// saved as sunset.png
	// already downloaded
}
