package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrijs2005/ragctl/internal/client/models"
)

// historyDefaultLimit bounds how much transcript a bare "history" shows.
const historyDefaultLimit = 20

// History prints the most recent transcript lines.
func (a *App) History(ctx context.Context) {
	records, err := a.rag.History(ctx, historyDefaultLimit)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if len(records) == 0 {
		fmt.Println("No conversation yet")
		return
	}

	for _, rec := range records {
		prefix := "you"
		if rec.Role == models.RoleAssistant {
			prefix = "bot"
		}
		fmt.Printf("%s  %s> %s\n", rec.CreatedAt.Local().Format("15:04:05"), prefix, rec.Content)
	}
}
