// Package history persists the local chat transcript. The backend keeps the
// conversational memory; this is the client-side record the user can review
// with the history command.
package history

import (
	"context"

	"github.com/dmitrijs2005/ragctl/internal/client/models"
)

type Repository interface {
	// Append stores one transcript line.
	Append(ctx context.Context, rec *models.ChatRecord) error

	// AppendTurn stores a question and its answer atomically, so the
	// transcript never shows half a turn.
	AppendTurn(ctx context.Context, user, assistant *models.ChatRecord) error

	// List returns the most recent records in chronological order, at most
	// limit of them (limit <= 0 means all).
	List(ctx context.Context, limit int) ([]models.ChatRecord, error)

	// Clear wipes the transcript.
	Clear(ctx context.Context) error
}
