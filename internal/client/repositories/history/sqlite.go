package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ragctl/internal/client/models"
	"github.com/dmitrijs2005/ragctl/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, rec *models.ChatRecord) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Role, rec.Content, createdAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// AppendTurn writes both sides of a chat turn in one transaction when the
// repository is bound to a plain *sql.DB. Inside an existing transaction it
// degrades to two appends.
func (r *SQLiteRepository) AppendTurn(ctx context.Context, user, assistant *models.ChatRecord) error {
	if db, ok := r.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			txRepo := NewSQLiteRepository(tx)
			if err := txRepo.Append(ctx, user); err != nil {
				return err
			}
			return txRepo.Append(ctx, assistant)
		})
	}

	if err := r.Append(ctx, user); err != nil {
		return err
	}
	return r.Append(ctx, assistant)
}

func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]models.ChatRecord, error) {
	// rowid preserves insertion order even when timestamps collide.
	query := `SELECT id, role, content, created_at FROM messages ORDER BY rowid`
	args := []any{}
	if limit > 0 {
		query = `SELECT id, role, content, created_at FROM (
			SELECT rowid AS rid, id, role, content, created_at FROM messages ORDER BY rid DESC LIMIT ?
		) ORDER BY rid`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}
	defer rows.Close()

	var result []models.ChatRecord
	for rows.Next() {
		var (
			rec models.ChatRecord
			ts  string
		)
		if err := rows.Scan(&rec.ID, &rec.Role, &rec.Content, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.CreatedAt = parsed
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate message rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM messages`)
	if err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}
	return nil
}
