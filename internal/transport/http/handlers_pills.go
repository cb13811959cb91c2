package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	pillmodels "pillbox/internal/pill/models"
	pillservice "pillbox/internal/pill/service"
	id "pillbox/pkg/domain"
	dErrors "pillbox/pkg/domain-errors"
)

//go:generate mockgen -source=handlers_pills.go -destination=mocks/pill_service.go -package=mocks PillService

// PillService is the pill use-case contract consumed by the HTTP layer.
type PillService interface {
	CreatePill(ctx context.Context, cmd pillservice.CreatePillCommand) (id.PillID, error)
	FindPill(ctx context.Context, pillID id.PillID) (*pillmodels.Pill, error)
	FindAllPills(ctx context.Context) ([]*pillmodels.Pill, error)
}

// PillHandler handles the pill endpoints.
type PillHandler struct {
	pills PillService
}

func NewPillHandler(pills PillService) *PillHandler {
	return &PillHandler{pills: pills}
}

func (h *PillHandler) Register(r chi.Router) {
	r.Post("/pills", h.handleCreatePill)
	r.Get("/pills", h.handleFindAllPills)
	r.Get("/pills/{id}", h.handleFindPill)
}

type createPillRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (req createPillRequest) validate() error {
	if strings.TrimSpace(req.Title) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "content is required")
	}
	return nil
}

type createPillResponse struct {
	ID id.PillID `json:"id"`
}

func (h *PillHandler) handleCreatePill(w http.ResponseWriter, r *http.Request) {
	var req createPillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, err)
		return
	}

	pillID, err := h.pills.CreatePill(r.Context(), pillservice.CreatePillCommand{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createPillResponse{ID: pillID})
}

func (h *PillHandler) handleFindPill(w http.ResponseWriter, r *http.Request) {
	pillID, err := id.ParsePillID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	pill, err := h.pills.FindPill(r.Context(), pillID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pill)
}

func (h *PillHandler) handleFindAllPills(w http.ResponseWriter, r *http.Request) {
	pills, err := h.pills.FindAllPills(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if pills == nil {
		pills = []*pillmodels.Pill{}
	}

	writeJSON(w, http.StatusOK, pills)
}
