package storage

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Asset is an uploaded binary payload waiting to be stored. Size is the declared
// length; stores write exactly len(Data) bytes.
type Asset struct {
	Data        []byte
	ContentType string
	Filename    string
	Size        int64
}

// AssetRef locates a stored asset
type AssetRef struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// AssetStore persists opaque binary assets and returns publicly resolvable references
type AssetStore interface {
	// Put stores the asset under folder/ownerID with a generated unique filename
	Put(ctx context.Context, asset Asset, folder, ownerID string) (AssetRef, error)
	// Delete removes the referenced assets. Per-item failures are logged and joined.
	Delete(ctx context.Context, refs []AssetRef) error
	// Ping reports whether the backing bucket is reachable
	Ping(ctx context.Context) error
}

var extensionsByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// ObjectKey builds folder/ownerID/<uuid>.<ext>. The extension comes from the original
// filename and falls back to one derived from the content type.
func ObjectKey(folder, ownerID string, asset Asset) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(asset.Filename)), ".")
	if ext == "" {
		ext = extensionsByContentType[asset.ContentType]
	}
	name := uuid.New().String()
	if ext != "" {
		name += "." + ext
	}
	return path.Join(strings.Trim(folder, "/"), ownerID, name)
}
