package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// Chat sends one turn to the backend. With no inline message the user is
// prompted for a (possibly multiline) one.
func (a *App) Chat(ctx context.Context, message string) {
	if message == "" {
		var err error
		message, err = GetMultiline(a.reader, "Enter message", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
	if message == "" {
		fmt.Println("Nothing to send")
		return
	}

	resp, err := a.rag.Chat(ctx, message, a.includeSources)
	if err != nil {
		log.Printf("Chat failed: %s", err.Error())
		return
	}

	fmt.Println(resp.Response)

	if a.includeSources && len(resp.Sources) > 0 {
		fmt.Printf("\nSources (%d):\n", len(resp.Sources))
		for i, src := range resp.Sources {
			fmt.Printf("  [%d] %s\n", i+1, sourceLabel(src.Metadata))
			if src.Score != nil {
				fmt.Printf("      score: %.4f\n", *src.Score)
			}
			fmt.Printf("      %s\n", truncate(src.Content, 160))
		}
	}
}

// ToggleSources flips whether chat answers list their source documents.
func (a *App) ToggleSources() {
	a.includeSources = !a.includeSources
	if a.includeSources {
		fmt.Println("Sources: on")
	} else {
		fmt.Println("Sources: off")
	}
}

func sourceLabel(metadata map[string]any) string {
	for _, key := range []string{"source", "filename", "file", "title"} {
		if v, ok := metadata[key]; ok {
			return fmt.Sprint(v)
		}
	}
	return "(unknown source)"
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
