package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vendapro/crm-api/internal/entity"
	"github.com/vendapro/crm-api/internal/infra/http/handlers"
	"github.com/vendapro/crm-api/internal/usecase"
)

type stubLeadRepo struct {
	leads []entity.Lead
}

func (s *stubLeadRepo) Create(ctx context.Context, lead *entity.Lead) error  { return nil }
func (s *stubLeadRepo) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	return nil, entity.ErrNotFound
}
func (s *stubLeadRepo) FindAll(ctx context.Context) ([]entity.Lead, error) { return s.leads, nil }
func (s *stubLeadRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}
func (s *stubLeadRepo) Delete(ctx context.Context, id string) error { return nil }

type stubLeadTaskRepo struct {
	tasks []entity.LeadTask
}

func (s *stubLeadTaskRepo) Create(ctx context.Context, task *entity.LeadTask) error { return nil }
func (s *stubLeadTaskRepo) FindByID(ctx context.Context, id string) (*entity.LeadTask, error) {
	return nil, entity.ErrNotFound
}
func (s *stubLeadTaskRepo) FindAll(ctx context.Context) ([]entity.LeadTask, error) {
	return s.tasks, nil
}
func (s *stubLeadTaskRepo) Update(ctx context.Context, task *entity.LeadTask) error { return nil }
func (s *stubLeadTaskRepo) Delete(ctx context.Context, id string) error             { return nil }

// TestNotificationsAsOfUsesLocalDay - tarefa no comecinho do dia conta para
// um as_of do mesmo dia, qualquer que seja o fuso do servidor
func TestNotificationsAsOfUsesLocalDay(t *testing.T) {
	company := entity.NewCompany("Padaria", "12345678000195", "desc",
		"a@b.com", "11987654321", "Alimentação")
	lead := entity.NewLead(company, "Instagram", "São Paulo - SP", "")

	begin := time.Date(2026, 3, 10, 0, 30, 0, 0, time.Local)
	task := entity.NewLeadTask(lead.ID, "Carlos", "Escritório", "Presencial",
		"Comercial", "São Paulo - SP", "Visita", begin, begin.Add(time.Hour))

	uc := usecase.NewNotificationsUseCase(
		&stubLeadRepo{leads: []entity.Lead{*lead}},
		&stubLeadTaskRepo{tasks: []entity.LeadTask{*task}},
	)
	handler := handlers.NewNotificationHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/notifications?as_of=2026-03-10", nil)
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.NotificationsOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.AttentionCount)
}

// TestNotificationsRejectsMalformedAsOf
func TestNotificationsRejectsMalformedAsOf(t *testing.T) {
	uc := usecase.NewNotificationsUseCase(&stubLeadRepo{}, &stubLeadTaskRepo{})
	handler := handlers.NewNotificationHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/notifications?as_of=10-03-2026", nil)
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
