package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pixelforge/studio-api/internal/infra/http/middleware"
)

// CopyGenerator produces marketing copy from a prompt. Content generation is
// independent glue: it never reads or writes the lead store.
type CopyGenerator interface {
	GenerateCopy(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}

type ContentHandler struct {
	Generator CopyGenerator
}

func NewContentHandler(generator CopyGenerator) *ContentHandler {
	return &ContentHandler{Generator: generator}
}

const copywriterSystem = "You are a senior copywriter for a web design studio. " +
	"Write polished, concise marketing copy. Return only the copy itself."

type blogCopyRequest struct {
	Topic    string   `json:"topic"`
	Keywords []string `json:"keywords"`
	Tone     string   `json:"tone"`
}

type socialCopyRequest struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	Tone     string `json:"tone"`
}

type copyResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}

// HandleBlogCopy is POST /api/content/blog.
func (h *ContentHandler) HandleBlogCopy(w http.ResponseWriter, r *http.Request) {
	var req blogCopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "topic is required")
		return
	}

	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	prompt := fmt.Sprintf("Write a blog post for a web design studio about %q. Tone: %s.", req.Topic, tone)
	if len(req.Keywords) > 0 {
		prompt += fmt.Sprintf(" Work in these keywords naturally: %s.", strings.Join(req.Keywords, ", "))
	}

	content, err := h.Generator.GenerateCopy(r.Context(), copywriterSystem, prompt, 2048)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "GENERATION_FAILED", err.Error())
		return
	}

	middleware.RecordCopyGeneration("blog")
	writeJSON(w, http.StatusOK, copyResponse{Success: true, Content: content})
}

// HandleSocialCopy is POST /api/content/social.
func (h *ContentHandler) HandleSocialCopy(w http.ResponseWriter, r *http.Request) {
	var req socialCopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "topic is required")
		return
	}

	platform := req.Platform
	if platform == "" {
		platform = "LinkedIn"
	}
	tone := req.Tone
	if tone == "" {
		tone = "friendly"
	}

	prompt := fmt.Sprintf("Write a %s post for a web design studio about %q. Tone: %s. Keep it short.",
		platform, req.Topic, tone)

	content, err := h.Generator.GenerateCopy(r.Context(), copywriterSystem, prompt, 512)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "GENERATION_FAILED", err.Error())
		return
	}

	middleware.RecordCopyGeneration("social")
	writeJSON(w, http.StatusOK, copyResponse{Success: true, Content: content})
}
