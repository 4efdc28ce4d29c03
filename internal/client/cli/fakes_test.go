package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/ragctl/internal/client/models"
)

// stubInputs swaps the interactive input seams for canned values.
func stubInputs(t *testing.T, username, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeSession struct {
	user *models.User
	tok  string

	loginUser   string
	loginPass   string
	loginErr    error
	logoutCalls int
	initCalls   int
}

func (f *fakeSession) Initialize(context.Context) { f.initCalls++ }

func (f *fakeSession) Login(_ context.Context, username, password string) error {
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.user = &models.User{ID: 1, Username: username, IsActive: true}
	f.tok = "tok-1"
	return nil
}

func (f *fakeSession) Logout(context.Context) {
	f.logoutCalls++
	f.user, f.tok = nil, ""
}

func (f *fakeSession) Invalidate() { f.user, f.tok = nil, "" }

func (f *fakeSession) Token() string { return f.tok }

func (f *fakeSession) CurrentUser() *models.User { return f.user }

func (f *fakeSession) IsAuthenticated() bool { return f.tok != "" && f.user != nil }

type fakeRAG struct {
	chatMsg   string
	chatCalls int
	chatResp  *models.ChatResponse
	chatErr   error

	healthCalls int
	clearCalls  int
}

func (f *fakeRAG) Chat(_ context.Context, message string, _ bool) (*models.ChatResponse, error) {
	f.chatCalls++
	f.chatMsg = message
	if f.chatResp != nil {
		return f.chatResp, f.chatErr
	}
	return &models.ChatResponse{Response: "ok"}, f.chatErr
}

func (f *fakeRAG) Search(context.Context, string, int, bool) (*models.SearchResponse, error) {
	return &models.SearchResponse{}, nil
}

func (f *fakeRAG) Upload(context.Context, string) (*models.UploadResponse, error) {
	return &models.UploadResponse{Success: true}, nil
}

func (f *fakeRAG) ProcessDocuments(context.Context, string, bool) (*models.ProcessDocumentsResponse, error) {
	return &models.ProcessDocumentsResponse{Success: true}, nil
}

func (f *fakeRAG) StoreInfo(context.Context) (*models.StoreInfo, error) {
	return &models.StoreInfo{}, nil
}

func (f *fakeRAG) Health(context.Context) (*models.Health, error) {
	f.healthCalls++
	return &models.Health{Status: "healthy"}, nil
}

func (f *fakeRAG) SupportedFormats(context.Context) (*models.SupportedFormats, error) {
	return &models.SupportedFormats{}, nil
}

func (f *fakeRAG) ClearMemory(context.Context) (string, error) {
	f.clearCalls++
	return "cleared", nil
}

func (f *fakeRAG) History(context.Context, int) ([]models.ChatRecord, error) {
	return nil, nil
}
