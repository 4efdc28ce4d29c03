package cli

import (
	"context"
	"fmt"
	"log"
)

// Upload sends a local document to the backend for ingestion. The file is
// validated against the backend's supported formats before any bytes move.
func (a *App) Upload(ctx context.Context, path string) {
	if path == "" {
		fmt.Println("Usage: upload <path>")
		return
	}

	resp, err := a.rag.Upload(ctx, path)
	if err != nil {
		log.Printf("Upload failed: %s", err.Error())
		return
	}

	if !resp.Success {
		fmt.Printf("Upload rejected: %s\n", resp.Message)
		return
	}
	fmt.Printf("Uploaded %s: %d chunks processed (%d bytes)\n",
		resp.Filename, resp.ChunksProcessed, resp.FileSizeBytes)
}

// Process asks the backend to ingest a directory that lives server-side.
func (a *App) Process(ctx context.Context, path string, clearExisting bool) {
	if path == "" {
		fmt.Println("Usage: process <server-path> [--clear]")
		return
	}

	resp, err := a.rag.ProcessDocuments(ctx, path, clearExisting)
	if err != nil {
		log.Printf("Processing failed: %s", err.Error())
		return
	}

	if !resp.Success {
		fmt.Printf("Processing failed: %s\n", resp.Message)
		return
	}
	fmt.Printf("%s (%d chunks)\n", resp.Message, resp.ChunksProcessed)
}
