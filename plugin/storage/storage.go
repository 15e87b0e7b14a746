package storage

import "context"

// UploadResult describes a stored media file: its coarse resource type
// ("image", "video" or "raw") and the URL path it is served from.
type UploadResult struct {
	Type string
	URL  string
}

// Uploader persists an uploaded blob and returns where it landed.
type Uploader interface {
	Upload(ctx context.Context, filename string, blob []byte) (*UploadResult, error)
}
