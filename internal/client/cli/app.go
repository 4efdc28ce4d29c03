// Package cli implements the interactive ragctl shell: a REPL over the
// session and RAG services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/ragctl/internal/client/api"
	"github.com/dmitrijs2005/ragctl/internal/client/config"
	"github.com/dmitrijs2005/ragctl/internal/client/repositories/history"
	"github.com/dmitrijs2005/ragctl/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/ragctl/internal/client/services"
	"github.com/dmitrijs2005/ragctl/internal/client/storage"
	"github.com/dmitrijs2005/ragctl/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App wires the services together and drives the REPL.
type App struct {
	config  *config.Config
	session services.SessionService
	rag     services.RAGService
	db      *sql.DB
	reader  *bufio.Reader
	Mode    Mode

	// includeSources mirrors the original UI's "show sources" toggle.
	includeSources bool
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	tokenStore := tokens.NewSQLiteStore(db)
	apiClient := api.New(api.Config{
		BaseURL:        c.BaseURL,
		Tokens:         tokenStore,
		RequestTimeout: c.RequestTimeout,
		SlowTimeout:    c.ChatTimeout,
		Logger:         logger,
	})

	demo := services.DemoCredentials{
		Enabled:  c.DemoLogin,
		Username: c.DemoUsername,
		Password: c.DemoPassword,
	}

	ss := services.NewSessionService(apiClient, tokenStore, demo, logger)
	rs := services.NewRAGService(apiClient, history.NewSQLiteRepository(db), logger)

	// An expired session observed mid-use drops the in-memory state right
	// away instead of waiting for the next restart.
	apiClient.OnUnauthorized(ss.Invalidate)

	return &App{
		config:  c,
		session: ss,
		rag:     rs,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

// StartOnlineStatusWatcher periodically probes backend health and flips the
// prompt between online and offline.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			_, err := a.rag.Health(probeCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
