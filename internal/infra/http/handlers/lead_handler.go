package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/vendapro/crm-api/internal/infra/http/middleware"
	"github.com/vendapro/crm-api/internal/usecase"
)

type LeadHandler struct {
	CreateUC  *usecase.CreateLeadUseCase
	ArchiveUC *usecase.ArchiveLeadUseCase
	PromoteUC *usecase.PromoteLeadUseCase
	DeleteUC  *usecase.DeleteLeadUseCase
	LeadRepo  usecase.LeadRepositoryInterface
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	archiveUC *usecase.ArchiveLeadUseCase,
	promoteUC *usecase.PromoteLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	leadRepo usecase.LeadRepositoryInterface,
) *LeadHandler {
	return &LeadHandler{
		CreateUC:  createUC,
		ArchiveUC: archiveUC,
		PromoteUC: promoteUC,
		DeleteUC:  deleteUC,
		LeadRepo:  leadRepo,
	}
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.FindAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]usecase.LeadOutput, 0, len(leads))
	for i := range leads {
		out = append(out, usecase.NewLeadOutput(&leads[i]))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lead, err := h.LeadRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusNotFound, errorBody{Error: "lead not found"})
		return
	}
	respondJSON(w, http.StatusOK, usecase.NewLeadOutput(lead))
}

func (h *LeadHandler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	lead, err := h.ArchiveUC.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

// HandleDelete destrói o lead de vez; arquivar é o caminho reversível.
// Fica registrado quem pediu a remoção.
func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	if err := h.DeleteUC.Execute(r.Context(), leadID); err != nil {
		respondError(w, err)
		return
	}

	log.Info().
		Str("lead_id", leadID).
		Str("user_id", middleware.UserID(r.Context())).
		Msg("lead removido")

	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) HandlePromote(w http.ResponseWriter, r *http.Request) {
	client, err := h.PromoteUC.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadPromoted()
	respondJSON(w, http.StatusOK, client)
}

func (h *LeadHandler) HandleResumePromotion(w http.ResponseWriter, r *http.Request) {
	client, err := h.PromoteUC.Resume(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadPromoted()
	respondJSON(w, http.StatusOK, client)
}
