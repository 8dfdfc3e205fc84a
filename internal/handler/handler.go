package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"slowka/internal/domain"
	"slowka/internal/store"

	"go.uber.org/zap"
)

// Pinger reports whether a backing dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// LearnView is the data bound to learn.html
type LearnView struct {
	Word domain.WordPair
}

// ErrorView is the data bound to error.html
type ErrorView struct {
	Message string
}

// Handler serves the learn page over HTTP
type Handler struct {
	words    store.WordStore
	renderer Renderer
	pinger   Pinger
	logger   *zap.Logger
}

// NewHandler creates a new handler instance. pinger may be nil.
func NewHandler(words store.WordStore, renderer Renderer, pinger Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		words:    words,
		renderer: renderer,
		pinger:   pinger,
		logger:   logger,
	}
}

// Routes registers all HTTP routes
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /learn", h.handleLearn)
	mux.HandleFunc("GET /health", h.handleHealth)
	return mux
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/learn", http.StatusFound)
}

// handleLearn shows one random word pair
func (h *Handler) handleLearn(w http.ResponseWriter, r *http.Request) {
	word, err := h.words.Random(r.Context())
	if errors.Is(err, domain.ErrEmptyStore) {
		h.logger.Warn("No words to learn")
		h.render(w, http.StatusServiceUnavailable, "error.html", ErrorView{Message: "There are no words to learn yet."})
		return
	}
	if err != nil {
		h.logger.Error("Failed to get random word", zap.Error(err))
		h.render(w, http.StatusInternalServerError, "error.html", ErrorView{Message: "Something went wrong. Try again later."})
		return
	}

	h.render(w, http.StatusOK, "learn.html", LearnView{Word: word})
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "down"})
			return
		}
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// render buffers the view so a template failure can still become a clean 500
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, data); err != nil {
		h.logger.Error("Failed to render view", zap.String("view", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("Failed to write response", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
