package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendapro/crm-api/internal/entity"
	"github.com/vendapro/crm-api/internal/usecase"
)

func activeLead() *entity.Lead {
	company := entity.NewCompany(
		"Padaria Dois Irmãos", "12345678000195",
		"Padaria de bairro", "contato@doisirmaos.com.br",
		"11987654321", "Alimentação",
	)
	company.RepresentativeName = "Carlos Pereira"
	return entity.NewLead(company, "Instagram", "São Paulo - SP", "Pacote de gestão")
}

// TestArchiveLeadSuccess
func TestArchiveLeadSuccess(t *testing.T) {
	ctx := context.Background()

	lead := activeLead()

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockLeadRepo.On("UpdateStatus", ctx, lead.ID, entity.LeadStatusInactive).Return(nil)

	uc := usecase.NewArchiveLeadUseCase(mockLeadRepo)

	output, err := uc.Execute(ctx, lead.ID)

	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusInactive, output.Status)
	assert.False(t, output.IsLead)
	mockLeadRepo.AssertCalled(t, "UpdateStatus", ctx, lead.ID, entity.LeadStatusInactive)
}

// TestArchiveLeadIdempotent - arquivar de novo é sucesso sem escrita
func TestArchiveLeadIdempotent(t *testing.T) {
	ctx := context.Background()

	lead := activeLead()
	lead.Status = entity.LeadStatusInactive

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("FindByID", ctx, lead.ID).Return(lead, nil)

	uc := usecase.NewArchiveLeadUseCase(mockLeadRepo)

	output, err := uc.Execute(ctx, lead.ID)

	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusInactive, output.Status)
	mockLeadRepo.AssertNotCalled(t, "UpdateStatus")
}

// TestArchiveLeadNotFound
func TestArchiveLeadNotFound(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("FindByID", ctx, "nao-existe").Return(nil, entity.ErrNotFound)

	uc := usecase.NewArchiveLeadUseCase(mockLeadRepo)

	output, err := uc.Execute(ctx, "nao-existe")

	assert.Error(t, err)
	assert.Nil(t, output)

	var nfErr *usecase.NotFoundError
	assert.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "lead", nfErr.Entity)
}
