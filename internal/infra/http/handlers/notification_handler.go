package handlers

import (
	"net/http"
	"time"

	"github.com/vendapro/crm-api/internal/usecase"
)

type NotificationHandler struct {
	UC *usecase.NotificationsUseCase
}

func NewNotificationHandler(uc *usecase.NotificationsUseCase) *NotificationHandler {
	return &NotificationHandler{UC: uc}
}

// HandleGet recomputa o feed. Aceita ?as_of=2006-01-02 para consultas
// retroativas; sem o parâmetro vale o dia corrente.
func (h *NotificationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		// No fuso local, como os horários das tarefas; em UTC a meia-noite
		// cairia no dia errado para quem está a oeste de Greenwich.
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, errorBody{Error: "as_of must be YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	out, err := h.UC.Compute(r.Context(), asOf)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *NotificationHandler) HandleAcknowledge(w http.ResponseWriter, r *http.Request) {
	h.UC.Acknowledge()
	w.WriteHeader(http.StatusNoContent)
}
