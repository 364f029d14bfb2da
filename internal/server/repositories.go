package server

import (
	"context"

	"housingready/pkg/types"
)

type ClientRepository interface {
	Clients(ctx context.Context) ([]*types.Client, error)
	Client(ctx context.Context, clientID string) (*types.Client, error)
	Create(ctx context.Context, client *types.Client) (*types.Client, error)
	Update(ctx context.Context, clientID string, client *types.Client) (*types.Client, error)
	Delete(ctx context.Context, clientID string) error
}

// DocumentRepository has no update: an uploaded document can only be
// replaced by uploading a new one.
type DocumentRepository interface {
	Document(ctx context.Context, documentID string) (*types.Document, error)
	DocumentsByClientID(ctx context.Context, clientID string) ([]*types.DocumentInfo, error)
	Create(ctx context.Context, doc *types.Document) error
	Delete(ctx context.Context, documentID string) error
}

type Pinger interface {
	PingContext(ctx context.Context) error
}
