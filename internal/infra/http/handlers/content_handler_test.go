package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCopyGenerator struct {
	mock.Mock
}

func (m *MockCopyGenerator) GenerateCopy(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, system, prompt, maxTokens)
	return args.String(0), args.Error(1)
}

func TestBlogCopyEndpoint(t *testing.T) {
	gen := new(MockCopyGenerator)
	gen.On("GenerateCopy", mock.Anything, mock.Anything, mock.Anything, 2048).
		Return("Ten reasons your studio needs a redesign...", nil)
	h := NewContentHandler(gen)

	body, _ := json.Marshal(map[string]any{
		"topic":    "website redesign",
		"keywords": []string{"responsive", "conversion"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/content/blog", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleBlogCopy(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp copyResponse
	json.NewDecoder(w.Body).Decode(&resp)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Content)

	// Keywords make it into the prompt.
	prompt := gen.Calls[0].Arguments.String(2)
	assert.Contains(t, prompt, "responsive, conversion")
}

func TestBlogCopyEndpointRequiresTopic(t *testing.T) {
	h := NewContentHandler(new(MockCopyGenerator))

	req := httptest.NewRequest(http.MethodPost, "/api/content/blog", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	h.HandleBlogCopy(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSocialCopyEndpointGenerationFailure(t *testing.T) {
	gen := new(MockCopyGenerator)
	gen.On("GenerateCopy", mock.Anything, mock.Anything, mock.Anything, 512).
		Return("", errors.New("model unavailable"))
	h := NewContentHandler(gen)

	req := httptest.NewRequest(http.MethodPost, "/api/content/social",
		bytes.NewReader([]byte(`{"topic":"launch"}`)))
	w := httptest.NewRecorder()
	h.HandleSocialCopy(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp errorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, "GENERATION_FAILED", resp.Error)
}
