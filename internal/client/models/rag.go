package models

// ChatRequest asks the backend for a chat turn.
type ChatRequest struct {
	Message        string `json:"message"`
	IncludeSources bool   `json:"include_sources,omitempty"`
}

// ChatResponse is the backend's answer, optionally with the retrieved
// source documents that informed it.
type ChatResponse struct {
	Response string   `json:"response"`
	Sources  []Source `json:"sources,omitempty"`
}

// Source is a retrieved document chunk. Score is only present when the
// request asked for similarity scores.
type Source struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
	Score    *float64       `json:"score,omitempty"`
}

// SearchRequest queries the knowledge base directly.
type SearchRequest struct {
	Query         string `json:"query"`
	K             int    `json:"k,omitempty"`
	IncludeScores bool   `json:"include_scores,omitempty"`
}

// SearchResponse echoes the query and lists the matching chunks.
type SearchResponse struct {
	Query   string   `json:"query"`
	Results []Source `json:"results"`
}

// UploadResponse reports the result of a multipart document upload.
type UploadResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	Filename        string `json:"filename"`
	ChunksProcessed int    `json:"chunks_processed"`
	FileSizeBytes   int64  `json:"file_size_bytes"`
}

// ProcessDocumentsRequest asks the backend to ingest a server-side directory.
type ProcessDocumentsRequest struct {
	DocumentsPath string `json:"documents_path"`
	ClearExisting bool   `json:"clear_existing,omitempty"`
}

// ProcessDocumentsResponse reports the ingestion outcome.
type ProcessDocumentsResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ChunksProcessed int    `json:"chunks_processed"`
}

// StoreInfo describes the backend vector store.
type StoreInfo struct {
	DocumentCount   int     `json:"document_count"`
	RerankerEnabled bool    `json:"reranker_enabled"`
	RerankerModel   *string `json:"reranker_model"`
	StoreReady      bool    `json:"store_ready"`
}

// Health is the backend readiness report.
type Health struct {
	Status             string `json:"status"`
	ChatbotReady       bool   `json:"chatbot_ready"`
	DataPipelineReady  bool   `json:"data_pipeline_ready"`
	FileProcessorReady bool   `json:"file_processor_ready"`
}

// SupportedFormats lists what the backend accepts for upload.
type SupportedFormats struct {
	SupportedExtensions []string `json:"supported_extensions"`
	MaxFileSizeMB       float64  `json:"max_file_size_mb"`
}
