package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	ETag     string `json:"etag,omitempty"`
}

// ObjectUploader stores round exports.
type ObjectUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	GetPublicURL(key string) string
}
