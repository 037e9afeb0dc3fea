package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendapro/crm-api/internal/infra/http/middleware"
	"github.com/vendapro/crm-api/internal/usecase"
)

type LeadTaskHandler struct {
	CreateUC     *usecase.CreateLeadTaskUseCase
	UpdateUC     *usecase.UpdateLeadTaskUseCase
	TransitionUC *usecase.TransitionLeadTaskUseCase
	DeleteUC     *usecase.DeleteLeadTaskUseCase
	TaskRepo     usecase.LeadTaskRepositoryInterface
}

func NewLeadTaskHandler(
	createUC *usecase.CreateLeadTaskUseCase,
	updateUC *usecase.UpdateLeadTaskUseCase,
	transitionUC *usecase.TransitionLeadTaskUseCase,
	deleteUC *usecase.DeleteLeadTaskUseCase,
	taskRepo usecase.LeadTaskRepositoryInterface,
) *LeadTaskHandler {
	return &LeadTaskHandler{
		CreateUC:     createUC,
		UpdateUC:     updateUC,
		TransitionUC: transitionUC,
		DeleteUC:     deleteUC,
		TaskRepo:     taskRepo,
	}
}

func (h *LeadTaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	task, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		var conflictErr *usecase.SchedulingConflictError
		if errors.As(err, &conflictErr) {
			middleware.RecordSchedulingConflict()
		}
		respondError(w, err)
		return
	}

	middleware.RecordTaskCreated("lead")
	respondJSON(w, http.StatusCreated, task)
}

func (h *LeadTaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskRepo.FindAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (h *LeadTaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	task, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (h *LeadTaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteUC.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type transitionRequest struct {
	Status string `json:"status"`
}

func (h *LeadTaskHandler) HandleTransition(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	task, err := h.TransitionUC.Execute(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}
