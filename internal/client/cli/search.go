package cli

import (
	"context"
	"fmt"
	"log"
)

// defaultSearchK mirrors the backend's default result count.
const defaultSearchK = 4

// Search queries the knowledge base directly, with similarity scores.
func (a *App) Search(ctx context.Context, query string) {
	if query == "" {
		fmt.Println("Usage: search <query>")
		return
	}

	resp, err := a.rag.Search(ctx, query, defaultSearchK, true)
	if err != nil {
		log.Printf("Search failed: %s", err.Error())
		return
	}

	if len(resp.Results) == 0 {
		fmt.Println("No results")
		return
	}

	for i, res := range resp.Results {
		fmt.Printf("[%d] %s", i+1, sourceLabel(res.Metadata))
		if res.Score != nil {
			fmt.Printf(" (score %.4f)", *res.Score)
		}
		fmt.Println()
		fmt.Printf("    %s\n", truncate(res.Content, 200))
	}
}
