package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vendapro/crm-api/internal/usecase"
)

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	// Preenchidos quando há como agir sobre o erro.
	ConflictingTaskID string `json:"conflicting_task_id,omitempty"`
	LeadID            string `json:"lead_id,omitempty"`
	CompanyID         string `json:"company_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError traduz a taxonomia de erros dos use cases para HTTP,
// preservando o detalhe estruturado (campo, tarefa conflitante, ids da
// promoção) que o front precisa para montar a mensagem.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		fields := make(map[string]string, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			fields[f.Field] = f.Message
		}
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: fields})
		return
	}

	var notFoundErr *usecase.NotFoundError
	if errors.As(err, &notFoundErr) {
		respondJSON(w, http.StatusNotFound, errorBody{Error: notFoundErr.Error()})
		return
	}

	var conflictErr *usecase.SchedulingConflictError
	if errors.As(err, &conflictErr) {
		respondJSON(w, http.StatusConflict, errorBody{
			Error:             conflictErr.Error(),
			ConflictingTaskID: conflictErr.ConflictingTaskID,
			LeadID:            conflictErr.LeadID,
		})
		return
	}

	var transitionErr *usecase.IllegalTransitionError
	if errors.As(err, &transitionErr) {
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{Error: transitionErr.Error()})
		return
	}

	var promotionErr *usecase.PromotionIncompleteError
	if errors.As(err, &promotionErr) {
		respondJSON(w, http.StatusInternalServerError, errorBody{
			Error:     promotionErr.Error(),
			LeadID:    promotionErr.LeadID,
			CompanyID: promotionErr.CompanyID,
		})
		return
	}

	var backendErr *usecase.BackendUnavailableError
	if errors.As(err, &backendErr) {
		respondJSON(w, http.StatusServiceUnavailable, errorBody{Error: "backend unavailable"})
		return
	}

	respondJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
}
