package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader writes purchase documents to a GCS bucket and hands back a
// token-protected public URL, the same scheme the dashboard uses for images.
type Uploader struct {
	client *storage.Client
	bucket string
}

func NewUploader(ctx context.Context, bucket string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}
	return &Uploader{client: client, bucket: bucket}, nil
}

func (u *Uploader) UploadDocument(ctx context.Context, purchaseID uint64, filename, contentType string, data []byte) (string, error) {
	token := uuid.NewString()
	objectPath := fmt.Sprintf("purchases/%d/documents/%s%s", purchaseID, uuid.NewString(), path.Ext(filename))

	obj := u.client.Bucket(u.bucket).Object(objectPath)
	w := obj.NewWriter(ctx)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.ContentType = contentType
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
	}
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	escapedPath := url.PathEscape(objectPath)
	publicURL := fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		u.bucket, escapedPath, token)
	return publicURL, nil
}

func (u *Uploader) Close() error {
	return u.client.Close()
}
