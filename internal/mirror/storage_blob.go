package mirror

import (
	"context"
	"fmt"
	"path"

	"github.com/moov-io/backupstore/internal/service"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

type blobStorage struct {
	id     string
	prefix string
	bucket *blob.Bucket
}

func newBlobStorage(cfg *service.MirrorConfig) (*blobStorage, error) {
	storage := &blobStorage{
		id:     cfg.ID,
		prefix: cfg.Prefix,
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURI)
	if err != nil {
		return nil, err
	}
	storage.bucket = bucket

	// set default values for metrics
	saveBackupErrors.With("type", "blob", "id", cfg.ID).Add(0)
	savedBackupsCounter.With("type", "blob", "id", cfg.ID).Add(0)

	return storage, nil
}

func (bs *blobStorage) key(filename string) string {
	if bs.prefix == "" {
		return filename
	}
	return path.Join(bs.prefix, filename)
}

func (bs *blobStorage) Close() error {
	if bs == nil {
		return nil
	}
	return bs.bucket.Close()
}

func (bs *blobStorage) SaveFile(ctx context.Context, filename string, data []byte) error {
	w, err := bs.bucket.NewWriter(ctx, bs.key(filename), &blob.WriterOptions{
		ContentType: "application/json",
	})
	if err != nil {
		saveBackupErrors.With("type", "blob", "id", bs.id).Add(1)
		return err
	}

	_, copyErr := w.Write(data)
	closeErr := w.Close()

	if copyErr != nil || closeErr != nil {
		saveBackupErrors.With("type", "blob", "id", bs.id).Add(1)
		return fmt.Errorf("copyErr=%v closeErr=%v", copyErr, closeErr)
	}

	savedBackupsCounter.With("type", "blob", "id", bs.id).Add(1)

	return nil
}
