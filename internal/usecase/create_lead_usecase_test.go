package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vendapro/crm-api/internal/entity"
	"github.com/vendapro/crm-api/internal/usecase"
)

// TestCreateLeadSuccess - empresa nasce ARCHIVED e lead ACTIVE, sempre
func TestCreateLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockCompanyRepo := new(MockCompanyRepository)

	mockCompanyRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockLeadRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateLeadUseCase(mockLeadRepo, mockCompanyRepo)

	output, err := uc.Execute(ctx, validLeadInput())

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, entity.LeadStatusActive, output.Status)
	assert.Equal(t, entity.CompanyStatusArchived, output.Company.Status)
	assert.True(t, output.IsLead)
	assert.Equal(t, "Padaria Dois Irmãos", output.Company.Name)
	assert.False(t, output.CreatedAt.IsZero())

	mockCompanyRepo.AssertCalled(t, "Create", ctx, mock.Anything)
	mockLeadRepo.AssertCalled(t, "Create", ctx, mock.Anything)
}

// TestCreateLeadValidationFailure - nada é escrito quando a validação barra
func TestCreateLeadValidationFailure(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockCompanyRepo := new(MockCompanyRepository)

	uc := usecase.NewCreateLeadUseCase(mockLeadRepo, mockCompanyRepo)

	input := validLeadInput()
	input.CompanyName = ""
	input.CommunicationChannel = "  "
	input.ContactLocation = ""

	output, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	var vErr *usecase.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 3)

	mockCompanyRepo.AssertNotCalled(t, "Create")
	mockLeadRepo.AssertNotCalled(t, "Create")
}

// TestCreateLeadRejectsBadDocument - CNPJ precisa ter 11 ou 14 dígitos
func TestCreateLeadRejectsBadDocument(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockCompanyRepo := new(MockCompanyRepository)

	uc := usecase.NewCreateLeadUseCase(mockLeadRepo, mockCompanyRepo)

	input := validLeadInput()
	input.CNPJ = "123456"

	output, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	var vErr *usecase.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, "cnpj", vErr.Fields[0].Field)

	mockCompanyRepo.AssertNotCalled(t, "Create")
}

// TestCreateLeadRollback - lead falhou, a empresa não pode sobrar no banco
func TestCreateLeadRollback(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockCompanyRepo := new(MockCompanyRepository)

	mockCompanyRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockLeadRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))
	mockCompanyRepo.On("Delete", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateLeadUseCase(mockLeadRepo, mockCompanyRepo)

	output, err := uc.Execute(ctx, validLeadInput())

	assert.Error(t, err)
	assert.Nil(t, output)

	var bErr *usecase.BackendUnavailableError
	assert.True(t, errors.As(err, &bErr))

	mockCompanyRepo.AssertCalled(t, "Delete", ctx, mock.Anything)
}
