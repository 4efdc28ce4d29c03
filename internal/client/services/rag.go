package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/ragctl/internal/client/api"
	"github.com/dmitrijs2005/ragctl/internal/client/models"
	"github.com/dmitrijs2005/ragctl/internal/client/repositories/history"
	"github.com/dmitrijs2005/ragctl/internal/common"
	"github.com/dmitrijs2005/ragctl/internal/filex"
	"github.com/dmitrijs2005/ragctl/internal/logging"
)

// RAGService wraps the backend's retrieval operations and keeps the local
// chat transcript alongside.
type RAGService interface {
	Chat(ctx context.Context, message string, includeSources bool) (*models.ChatResponse, error)
	Search(ctx context.Context, query string, k int, includeScores bool) (*models.SearchResponse, error)

	// Upload validates the file against the backend's supported formats and
	// size cap before sending it.
	Upload(ctx context.Context, path string) (*models.UploadResponse, error)

	ProcessDocuments(ctx context.Context, documentsPath string, clearExisting bool) (*models.ProcessDocumentsResponse, error)
	StoreInfo(ctx context.Context) (*models.StoreInfo, error)
	Health(ctx context.Context) (*models.Health, error)
	SupportedFormats(ctx context.Context) (*models.SupportedFormats, error)

	// ClearMemory drops the backend conversation memory and the local
	// transcript together.
	ClearMemory(ctx context.Context) (string, error)

	History(ctx context.Context, limit int) ([]models.ChatRecord, error)
}

type ragService struct {
	client  api.Client
	history history.Repository
	log     logging.Logger
}

// NewRAGService constructs a RAGService bound to the given API client and
// transcript repository.
func NewRAGService(client api.Client, hist history.Repository, log logging.Logger) RAGService {
	return &ragService{client: client, history: hist, log: log}
}

// Chat sends one turn and records both sides in the local transcript.
// Transcript failures are logged, not surfaced: losing a history line must
// not break the conversation.
func (r *ragService) Chat(ctx context.Context, message string, includeSources bool) (*models.ChatResponse, error) {
	resp, err := r.client.Chat(ctx, message, includeSources)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = r.history.AppendTurn(ctx,
		&models.ChatRecord{ID: uuid.NewString(), Role: models.RoleUser, Content: message, CreatedAt: now},
		&models.ChatRecord{ID: uuid.NewString(), Role: models.RoleAssistant, Content: resp.Response, CreatedAt: now},
	)
	if err != nil {
		r.log.Warn(ctx, "failed to record transcript turn", "error", err)
	}

	return resp, nil
}

func (r *ragService) Search(ctx context.Context, query string, k int, includeScores bool) (*models.SearchResponse, error) {
	return r.client.Search(ctx, query, k, includeScores)
}

func (r *ragService) Upload(ctx context.Context, path string) (*models.UploadResponse, error) {
	size, err := filex.RegularFileSize(path)
	if err != nil {
		return nil, err
	}

	formats, err := r.client.SupportedFormats(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch supported formats: %w", err)
	}

	if !filex.HasAllowedExtension(path, formats.SupportedExtensions) {
		return nil, fmt.Errorf("%w: accepted extensions: %v", common.ErrUnsupportedFormat, formats.SupportedExtensions)
	}
	if maxBytes := int64(formats.MaxFileSizeMB * (1 << 20)); maxBytes > 0 && size > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds the %.0f MB limit", common.ErrFileTooLarge, size, formats.MaxFileSizeMB)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return r.client.Upload(ctx, filepath.Base(path), f)
}

func (r *ragService) ProcessDocuments(ctx context.Context, documentsPath string, clearExisting bool) (*models.ProcessDocumentsResponse, error) {
	return r.client.ProcessDocuments(ctx, documentsPath, clearExisting)
}

func (r *ragService) StoreInfo(ctx context.Context) (*models.StoreInfo, error) {
	return r.client.StoreInfo(ctx)
}

func (r *ragService) Health(ctx context.Context) (*models.Health, error) {
	return r.client.Health(ctx)
}

func (r *ragService) SupportedFormats(ctx context.Context) (*models.SupportedFormats, error) {
	return r.client.SupportedFormats(ctx)
}

func (r *ragService) ClearMemory(ctx context.Context) (string, error) {
	msg, err := r.client.ClearMemory(ctx)
	if err != nil {
		return "", err
	}
	if err := r.history.Clear(ctx); err != nil {
		r.log.Warn(ctx, "failed to clear local transcript", "error", err)
	}
	return msg, nil
}

func (r *ragService) History(ctx context.Context, limit int) ([]models.ChatRecord, error) {
	return r.history.List(ctx, limit)
}
