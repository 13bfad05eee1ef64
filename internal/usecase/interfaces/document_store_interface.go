package interfaces

import (
	"context"
	"errors"

	"torchline_portal/internal/domain/entities"
)

// ErrDocumentNotFound is returned by Update and Delete when no live document
// has the given id.
var ErrDocumentNotFound = errors.New("document not found")

// IDocumentStore abstracts the remote project document store.
//
// Every call carries the caller's email (owner), which the store records as
// an ownership/audit tag. Implementations never retry; any failure is
// returned as-is to the caller.
type IDocumentStore interface {
	Create(ctx context.Context, owner string, collection string, data any, tags []string) (entities.Document, error)
	Read(ctx context.Context, owner string, query entities.ReadQuery) ([]entities.Document, error)
	Update(ctx context.Context, owner string, id string, data any, tags []string, incrementVersion bool) (entities.Document, error)
	Delete(ctx context.Context, owner string, id string, hardDelete bool) error
	Collections(ctx context.Context, owner string) ([]entities.CollectionInfo, error)
	Stats(ctx context.Context, owner string) (entities.StoreStats, error)
}
