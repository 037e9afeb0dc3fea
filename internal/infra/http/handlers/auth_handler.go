package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vendapro/crm-api/internal/usecase"
)

type AuthHandler struct {
	UC *usecase.AuthUseCase
}

func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{UC: uc}
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	user, err := h.UC.Register(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	out, err := h.UC.Login(r.Context(), input)
	if err != nil {
		// Credencial errada não diferencia usuário inexistente de senha
		// errada para o caller.
		var notFoundErr *usecase.NotFoundError
		if errors.As(err, &notFoundErr) {
			respondJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}
