package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Info prints vector store statistics.
func (a *App) Info(ctx context.Context) {
	info, err := a.rag.StoreInfo(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Println("Vector store:")
	fmt.Printf("  documents: %d\n", info.DocumentCount)
	fmt.Printf("  ready:     %v\n", info.StoreReady)
	if info.RerankerEnabled && info.RerankerModel != nil {
		fmt.Printf("  reranker:  %s\n", *info.RerankerModel)
	} else {
		fmt.Printf("  reranker:  disabled\n")
	}
}

// Health prints backend readiness.
func (a *App) Health(ctx context.Context) {
	h, err := a.rag.Health(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Printf("Status: %s\n", h.Status)
	fmt.Printf("  chatbot:        %v\n", h.ChatbotReady)
	fmt.Printf("  data pipeline:  %v\n", h.DataPipelineReady)
	fmt.Printf("  file processor: %v\n", h.FileProcessorReady)
}

// Formats prints what the backend accepts for upload.
func (a *App) Formats(ctx context.Context) {
	f, err := a.rag.SupportedFormats(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Printf("Supported: %s (max %.0f MB)\n",
		strings.Join(f.SupportedExtensions, ", "), f.MaxFileSizeMB)
}

// Clear drops the backend's conversation memory and the local transcript.
func (a *App) Clear(ctx context.Context) {
	msg, err := a.rag.ClearMemory(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Println(msg)
}
