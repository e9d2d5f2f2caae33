package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"newsdesk/common"
	"newsdesk/types"
)

// objectStore is the slice of the S3 wrapper the archiver needs.
type objectStore interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error
	Exists(ctx context.Context, bucket, key string) (bool, error)
}

// Archiver writes snapshots of the aggregated post list to S3 after each
// refresh, so past front pages can be replayed.
type Archiver struct {
	s3     objectStore
	bucket string
	prefix string
	now    func() time.Time
}

// NewArchiverFromEnv returns an archiver when S3_BUCKET is set. Optional:
// S3_REGION, S3_PROFILE, S3_PREFIX, S3_USE_PATH_STYLE=true. Returns nil when
// unconfigured or when the client cannot be built.
func NewArchiverFromEnv(ctx context.Context) *Archiver {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil
	}

	client, err := common.NewS3(ctx, common.S3Config{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	})
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (archiving disabled)", err)
		return nil
	}

	prefix := strings.TrimSpace(os.Getenv("S3_PREFIX"))
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	return &Archiver{s3: client, bucket: bucket, prefix: prefix, now: time.Now}
}

// ArchivePosts uploads the post list as a timestamped JSON object.
func (a *Archiver) ArchivePosts(ctx context.Context, posts []types.BlogPost) error {
	payload := map[string]interface{}{
		"archived_at": a.now().UTC(),
		"post_count":  len(posts),
		"posts":       posts,
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal posts: %w", err)
	}

	key := a.prefix + "posts/" + a.now().UTC().Format("2006-01-02T15-04-05Z") + ".json"
	exists, err := a.s3.Exists(ctx, a.bucket, key)
	if err != nil {
		return fmt.Errorf("failed to check archive key: %w", err)
	}
	if exists {
		log.Printf("Archive s3://%s/%s already present, skipping", a.bucket, key)
		return nil
	}
	if err := a.s3.Put(ctx, a.bucket, key, bytes.NewReader(b), "application/json"); err != nil {
		return fmt.Errorf("failed to upload archive: %w", err)
	}
	log.Printf("Archived %d posts to s3://%s/%s", len(posts), a.bucket, key)
	return nil
}
