package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"archsmith/internal/deploy"
	"archsmith/internal/detail"
	"archsmith/internal/export"
	"archsmith/internal/llm"
	"archsmith/internal/runner"
	"archsmith/internal/types"
)

// Handler exposes the blueprint API over plain HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes registers every endpoint on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/blueprint/run", h.startRun)
	mux.HandleFunc("GET /api/blueprint/watch", h.watchRun)
	mux.HandleFunc("GET /api/blueprint/ws", h.watchRunWS)
	mux.HandleFunc("POST /api/blueprint/generate", h.generate)

	mux.HandleFunc("GET /api/blueprints", h.listBlueprints)
	mux.HandleFunc("GET /api/blueprints/{id}", h.getBlueprint)
	mux.HandleFunc("GET /api/blueprints/{id}/export", h.exportBlueprint)

	mux.HandleFunc("GET /api/tiers", h.listTiers)
	mux.HandleFunc("GET /api/platforms", h.listPlatforms)
	mux.HandleFunc("GET /api/providers", h.listProviders)

	mux.HandleFunc("GET /healthz", h.health)

	return mux
}

func (h *Handler) startRun(w http.ResponseWriter, r *http.Request) {
	var in types.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	runID, err := h.svc.StartRun(in)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"run_id": runID})
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var in types.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	doc, err := h.svc.Generate(r.Context(), in)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) listBlueprints(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	summaries, err := h.svc.store.List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"blueprints": summaries, "count": len(summaries)})
}

func (h *Handler) getBlueprint(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	doc, ok := h.svc.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("blueprint %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) exportBlueprint(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	doc, ok := h.svc.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("blueprint %s not found", id))
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "markdown"
	}
	switch format {
	case "json":
		data, err := export.JSON(doc)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(doc, "json")))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	case "markdown", "md":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(doc, "md")))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(export.Markdown(doc)))
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown export format %q, want json or markdown", format))
	}
}

func (h *Handler) listTiers(w http.ResponseWriter, _ *http.Request) {
	tiers := detail.Tiers()
	out := make([]detail.Config, 0, len(tiers))
	for _, t := range tiers {
		cfg, err := detail.Resolve(t)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		out = append(out, cfg)
	}
	writeJSON(w, http.StatusOK, map[string]any{"tiers": out})
}

func (h *Handler) listPlatforms(w http.ResponseWriter, _ *http.Request) {
	type platformInfo struct {
		ID          types.Platform              `json:"id"`
		Name        string                      `json:"name"`
		Recommended *deploy.RecommendedServices `json:"recommended_services,omitempty"`
	}
	platforms := types.Platforms()
	out := make([]platformInfo, 0, len(platforms))
	for _, p := range platforms {
		info := platformInfo{ID: p, Name: deploy.DisplayName(p)}
		if rec, ok := deploy.Recommended(p); ok {
			info.Recommended = &rec
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, map[string]any{"platforms": out})
}

func (h *Handler) listProviders(w http.ResponseWriter, _ *http.Request) {
	ids := llm.Providers()
	out := make([]llm.ProviderSpec, 0, len(ids))
	for _, id := range ids {
		spec, err := llm.Provider(id)
		if err != nil {
			continue
		}
		out = append(out, spec)
	}
	writeJSON(w, http.StatusOK, map[string]any{"providers": out})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps pipeline errors onto HTTP status codes.
func statusFor(err error) int {
	var ve *types.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var sf *runner.StageFailure
	if errors.As(err, &sf) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
