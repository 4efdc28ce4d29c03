package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/ragctl/internal/client/models"
	"github.com/dmitrijs2005/ragctl/internal/logging"
)

const apiPrefix = "/api/v1"

// Default per-call deadlines. Chat turns run the agent loop server-side and
// routinely take an order of magnitude longer than metadata calls; uploads
// and server-side ingestion get the long deadline too.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultSlowTimeout    = 120 * time.Second
)

// Config carries the knobs for the HTTP client. Zero-value timeouts fall back
// to the package defaults; a nil Logger disables transport logging.
type Config struct {
	BaseURL        string
	Tokens         TokenStore
	RequestTimeout time.Duration
	SlowTimeout    time.Duration
	Logger         logging.Logger
}

// HTTPClient talks JSON to the backend over the contract paths. All methods
// honor the context passed in; each call additionally applies its own
// deadline on top.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	transport      *authTransport
	requestTimeout time.Duration
	slowTimeout    time.Duration
	log            logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// New builds an HTTPClient. The bearer-token interceptor is installed here;
// everything above this constructor is authentication-agnostic.
func New(cfg Config) *HTTPClient {
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	slowTimeout := cfg.SlowTimeout
	if slowTimeout <= 0 {
		slowTimeout = DefaultSlowTimeout
	}

	transport := &authTransport{base: http.DefaultTransport, tokens: cfg.Tokens}

	return &HTTPClient{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           &http.Client{Transport: transport},
		transport:      transport,
		requestTimeout: requestTimeout,
		slowTimeout:    slowTimeout,
		log:            cfg.Logger,
	}
}

// OnUnauthorized registers fn to run whenever the backend answers 401. The
// persisted token has already been cleared when fn fires; fn is for dropping
// in-memory session state.
func (c *HTTPClient) OnUnauthorized(fn func()) {
	c.transport.setOnUnauthorized(fn)
}

// Login posts the credential pair and returns the issued bearer token.
// The request itself goes out unauthenticated.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	req := models.Credentials{Username: username, Password: password}
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp, c.requestTimeout); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login: empty access token in response")
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user, c.requestTimeout); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, c.requestTimeout)
}

func (c *HTTPClient) Chat(ctx context.Context, message string, includeSources bool) (*models.ChatResponse, error) {
	req := models.ChatRequest{Message: message, IncludeSources: includeSources}
	var resp models.ChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat", req, &resp, c.slowTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Search(ctx context.Context, query string, k int, includeScores bool) (*models.SearchResponse, error) {
	req := models.SearchRequest{Query: query, K: k, IncludeScores: includeScores}
	var resp models.SearchResponse
	if err := c.do(ctx, http.MethodPost, "/search", req, &resp, c.requestTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Upload sends the file as multipart form data under the "file" field.
func (c *HTTPClient) Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("upload: read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.slowTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/upload"), &buf)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp models.UploadResponse
	if err := c.send(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ProcessDocuments(ctx context.Context, documentsPath string, clearExisting bool) (*models.ProcessDocumentsResponse, error) {
	req := models.ProcessDocumentsRequest{DocumentsPath: documentsPath, ClearExisting: clearExisting}
	var resp models.ProcessDocumentsResponse
	if err := c.do(ctx, http.MethodPost, "/process-documents", req, &resp, c.slowTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) StoreInfo(ctx context.Context) (*models.StoreInfo, error) {
	var resp models.StoreInfo
	if err := c.do(ctx, http.MethodGet, "/store-info", nil, &resp, c.requestTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Health(ctx context.Context) (*models.Health, error) {
	var resp models.Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp, c.requestTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SupportedFormats(ctx context.Context) (*models.SupportedFormats, error) {
	var resp models.SupportedFormats
	if err := c.do(ctx, http.MethodGet, "/supported-formats", nil, &resp, c.requestTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ClearMemory(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, "/clear-memory", nil, &resp, c.requestTimeout); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) endpoint(path string) string {
	return c.baseURL + apiPrefix + path
}

// do issues a JSON request with the given per-call deadline and decodes the
// response into out (skipped when out is nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: marshal request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send executes the request and maps the outcome onto the error taxonomy:
// transport failures to ErrUnavailable/ErrTimeout, 401 to ErrUnauthorized,
// other non-2xx statuses to *APIError, decode failures to plain errors.
func (c *HTTPClient) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapTransportError(req, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token already cleared by the transport at this point. The backend's
		// reason is kept so a rejected login can be shown verbatim.
		if detail := readDetail(resp.Body); detail != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
		}
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnauthorized)
	}
	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *HTTPClient) mapTransportError(req *http.Request, err error) error {
	if c.log != nil {
		c.log.Debug(req.Context(), "request failed", "method", req.Method, "path", req.URL.Path, "error", err)
	}

	var uerr *url.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &uerr) && uerr.Timeout())
	if timedOut {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrTimeout)
	}
	return fmt.Errorf("%s %s: %w: %v", req.Method, req.URL.Path, ErrUnavailable, err)
}

// readDetail extracts the backend's {"detail": "..."} message. Validation
// errors may carry a structured detail; those are passed through verbatim.
func readDetail(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}

	var parsed struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}

	var s string
	if err := json.Unmarshal(parsed.Detail, &s); err == nil {
		return s
	}
	return string(parsed.Detail)
}
