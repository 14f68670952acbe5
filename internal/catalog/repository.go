package catalog

import "context"

// Repository defines all document-store operations for the catalog.
type Repository interface {
	// Full collection, sorted by name.
	ListAll(ctx context.Context) ([]MenuItem, error)

	// Insert or replace one dish document. A blank ID gets one assigned.
	Upsert(ctx context.Context, item *MenuItem) error

	Delete(ctx context.Context, id string) error

	// Store the public URL of an uploaded dish image.
	SetImageURL(ctx context.Context, id, url string) error
}
