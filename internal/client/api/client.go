// Package api implements the authenticated HTTP client for the RAG backend.
// Bearer attachment and 401 invalidation live in the transport so callers
// never deal with authentication directly.
package api

import (
	"context"
	"io"

	"github.com/dmitrijs2005/ragctl/internal/client/models"
)

// Client is the full backend surface used by the services layer.
type Client interface {
	// Login exchanges credentials for a bearer token. The token is returned
	// to the caller; persisting it is the session layer's job.
	Login(ctx context.Context, username, password string) (string, error)

	// Me resolves the current user from the stored bearer token.
	Me(ctx context.Context) (*models.User, error)

	// Logout is best-effort: the server call's outcome carries no client-side
	// state; callers are expected to ignore the error.
	Logout(ctx context.Context) error

	Chat(ctx context.Context, message string, includeSources bool) (*models.ChatResponse, error)
	Search(ctx context.Context, query string, k int, includeScores bool) (*models.SearchResponse, error)
	Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadResponse, error)
	ProcessDocuments(ctx context.Context, documentsPath string, clearExisting bool) (*models.ProcessDocumentsResponse, error)
	StoreInfo(ctx context.Context) (*models.StoreInfo, error)
	Health(ctx context.Context) (*models.Health, error)
	SupportedFormats(ctx context.Context) (*models.SupportedFormats, error)
	ClearMemory(ctx context.Context) (string, error)
}

// TokenStore is the read/invalidate surface the transport needs. The full
// store (with Set) lives in the repositories layer; the transport only reads
// the current token and clears it when the backend answers 401.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
