package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendapro/crm-api/internal/infra/http/middleware"
	"github.com/vendapro/crm-api/internal/usecase"
)

type ClientHandler struct {
	ClientRepo usecase.ClientRepositoryInterface
	TaskUC     *usecase.ClientTaskUseCase
}

func NewClientHandler(clientRepo usecase.ClientRepositoryInterface, taskUC *usecase.ClientTaskUseCase) *ClientHandler {
	return &ClientHandler{
		ClientRepo: clientRepo,
		TaskUC:     taskUC,
	}
}

func (h *ClientHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientRepo.FindAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	client, err := h.ClientRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusNotFound, errorBody{Error: "client not found"})
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClientTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	task, err := h.TaskUC.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordTaskCreated("client")
	respondJSON(w, http.StatusCreated, task)
}

func (h *ClientHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskUC.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (h *ClientHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.TaskUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateClientTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	task, err := h.TaskUC.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}
