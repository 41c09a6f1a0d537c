// Package httpapi serves the evaluation service over HTTP.
package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/mathiz-eval/internal/codec"
	"github.com/abhisek/mathiz-eval/internal/evaluation"
)

// maxBodyBytes bounds request documents; expression trees are small.
const maxBodyBytes = 1 << 20

// Service defines the evaluation operations the handlers need.
type Service interface {
	Classify(ctx context.Context, req *codec.ClassifyRequest) (*evaluation.ClassifyResult, error)
	Render(ctx context.Context, req *codec.RenderRequest) *evaluation.RenderResult
	Rules() map[string][]string
}

// Handler wires evaluation endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a Handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the evaluation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/classify", h.HandleClassify)
	r.Post("/v1/render", h.HandleRender)
	r.Get("/v1/rules", h.HandleRules)
}

// NewRouter builds the full router: evaluation endpoints, health check and
// Prometheus metrics from gatherer.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	h.Register(r)
	return r
}

type classifyResponse struct {
	ID      string `json:"id"`
	Matched bool   `json:"matched"`
}

// HandleClassify handles POST /v1/classify requests.
func (h *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	raw, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := codec.DecodeClassifyRequest(raw)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid classify request",
			"request_id", middleware.GetReqID(ctx),
			"error", err,
		)
		writeError(w, err)
		return
	}

	result, err := h.service.Classify(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "classify request served",
		"request_id", middleware.GetReqID(ctx),
		"interaction", req.Interaction,
		"rule", req.Rule,
		"matched", result.Matched,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, classifyResponse{ID: result.ID, Matched: result.Matched})
}

type renderResponse struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Text     string `json:"text,omitempty"`
	OK       bool   `json:"ok"`
}

// HandleRender handles POST /v1/render requests. An unavailable rendering
// is a normal 200 response with ok=false.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := codec.DecodeRenderRequest(raw)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid render request",
			"request_id", middleware.GetReqID(ctx),
			"error", err,
		)
		writeError(w, err)
		return
	}

	result := h.service.Render(ctx, req)
	writeJSON(w, http.StatusOK, renderResponse{
		ID:       result.ID,
		Language: result.Language.String(),
		Text:     result.Text,
		OK:       result.OK,
	})
}

type rulesResponse struct {
	Interactions map[string][]string `json:"interactions"`
}

// HandleRules handles GET /v1/rules requests.
func (h *Handler) HandleRules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, rulesResponse{Interactions: h.service.Rules()})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &codec.DecodeError{Schema: "request-body", Err: fmt.Errorf("read body: %w", err)}
	}
	return raw, nil
}
