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

// TestPromoteLeadSuccess - os dois passos confirmam e o checkpoint some
func TestPromoteLeadSuccess(t *testing.T) {
	ctx := context.Background()

	lead := activeLead()

	mockLeadRepo := new(MockLeadRepository)
	mockCompanyRepo := new(MockCompanyRepository)
	mockPromotionRepo := new(MockPromotionAttemptRepository)
	mockQueue := new(MockQueueProducer)
	mockQueue.On("PublishPromotion", mock.Anything, mock.Anything).Return(nil)

	mockLeadRepo.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockPromotionRepo.On("Save", ctx, mock.Anything).Return(nil)
	mockCompanyRepo.On("UpdateStatus", ctx, lead.Company.ID, entity.CompanyStatusClient).Return(nil)
	mockPromotionRepo.On("MarkCompanyPromoted", ctx, lead.ID).Return(nil)
	mockLeadRepo.On("UpdateStatus", ctx, lead.ID, entity.LeadStatusInactive).Return(nil)
	mockPromotionRepo.On("Delete", ctx, lead.ID).Return(nil)

	uc := usecase.NewPromoteLeadUseCase(mockLeadRepo, mockCompanyRepo, mockPromotionRepo, mockQueue)

	client, err := uc.Execute(ctx, lead.ID)

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, lead.Company.ID, client.ID)
	assert.Equal(t, "Padaria Dois Irmãos", client.Name)
	assert.Equal(t, "Carlos Pereira", client.Representative)
	assert.Equal(t, "São Paulo - SP", client.Location)

	mockCompanyRepo.AssertCalled(t, "UpdateStatus", ctx, lead.Company.ID, entity.CompanyStatusClient)
	mockLeadRepo.AssertCalled(t, "UpdateStatus", ctx, lead.ID, entity.LeadStatusInactive)
	mockPromotionRepo.AssertCalled(t, "Delete", ctx, lead.ID)
}

// TestPromoteLeadNotFound - lead inexistente não toca em empresa nenhuma
func TestPromoteLeadNotFound(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockCompanyRepo := new(MockCompanyRepository)
	mockPromotionRepo := new(MockPromotionAttemptRepository)

	mockLeadRepo.On("FindByID", ctx, "fantasma").Return(nil, entity.ErrNotFound)

	uc := usecase.NewPromoteLeadUseCase(mockLeadRepo, mockCompanyRepo, mockPromotionRepo, nil)

	client, err := uc.Execute(ctx, "fantasma")

	assert.Error(t, err)
	assert.Nil(t, client)

	var nfErr *usecase.NotFoundError
	assert.True(t, errors.As(err, &nfErr))

	mockCompanyRepo.AssertNotCalled(t, "UpdateStatus")
	mockPromotionRepo.AssertNotCalled(t, "Save")
}

// TestPromoteLeadAlreadyInactive
func TestPromoteLeadAlreadyInactive(t *testing.T) {
	ctx := context.Background()

	lead := activeLead()
	lead.Status = entity.LeadStatusInactive

	mockLeadRepo := new(MockLeadRepository)
	mockCompanyRepo := new(MockCompanyRepository)
	mockPromotionRepo := new(MockPromotionAttemptRepository)

	mockLeadRepo.On("FindByID", ctx, lead.ID).Return(lead, nil)

	uc := usecase.NewPromoteLeadUseCase(mockLeadRepo, mockCompanyRepo, mockPromotionRepo, nil)

	client, err := uc.Execute(ctx, lead.ID)

	assert.Error(t, err)
	assert.Nil(t, client)

	var itErr *usecase.IllegalTransitionError
	assert.True(t, errors.As(err, &itErr))
	assert.Equal(t, entity.LeadStatusInactive, itErr.From)

	mockCompanyRepo.AssertNotCalled(t, "UpdateStatus")
}

// TestPromoteLeadHalfDone - empresa promovida, lead travou: o erro carrega
// os ids e nunca vira falha genérica
func TestPromoteLeadHalfDone(t *testing.T) {
	ctx := context.Background()

	lead := activeLead()

	mockLeadRepo := new(MockLeadRepository)
	mockCompanyRepo := new(MockCompanyRepository)
	mockPromotionRepo := new(MockPromotionAttemptRepository)

	mockLeadRepo.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockPromotionRepo.On("Save", ctx, mock.Anything).Return(nil)
	mockCompanyRepo.On("UpdateStatus", ctx, lead.Company.ID, entity.CompanyStatusClient).Return(nil)
	mockPromotionRepo.On("MarkCompanyPromoted", ctx, lead.ID).Return(nil)
	mockLeadRepo.On("UpdateStatus", ctx, lead.ID, entity.LeadStatusInactive).Return(errors.New("timeout"))

	uc := usecase.NewPromoteLeadUseCase(mockLeadRepo, mockCompanyRepo, mockPromotionRepo, nil)

	client, err := uc.Execute(ctx, lead.ID)

	assert.Error(t, err)
	assert.Nil(t, client)

	var piErr *usecase.PromotionIncompleteError
	assert.True(t, errors.As(err, &piErr))
	assert.Equal(t, lead.ID, piErr.LeadID)
	assert.Equal(t, lead.Company.ID, piErr.CompanyID)

	var bErr *usecase.BackendUnavailableError
	assert.False(t, errors.As(err, &bErr))

	// O checkpoint fica para o Resume.
	mockPromotionRepo.AssertNotCalled(t, "Delete")
}

// TestResumePromotionRetriesOnlyMissingStep - empresa já virou CLIENT,
// então o Resume só desativa o lead
func TestResumePromotionRetriesOnlyMissingStep(t *testing.T) {
	ctx := context.Background()

	lead := activeLead()
	attempt := &entity.PromotionAttempt{
		LeadID:          lead.ID,
		CompanyID:       lead.Company.ID,
		CompanyPromoted: true,
	}

	mockLeadRepo := new(MockLeadRepository)
	mockCompanyRepo := new(MockCompanyRepository)
	mockPromotionRepo := new(MockPromotionAttemptRepository)
	mockQueue := new(MockQueueProducer)
	mockQueue.On("PublishPromotion", mock.Anything, mock.Anything).Return(nil)

	mockPromotionRepo.On("FindByLeadID", ctx, lead.ID).Return(attempt, nil)
	mockLeadRepo.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockLeadRepo.On("UpdateStatus", ctx, lead.ID, entity.LeadStatusInactive).Return(nil)
	mockPromotionRepo.On("Delete", ctx, lead.ID).Return(nil)

	uc := usecase.NewPromoteLeadUseCase(mockLeadRepo, mockCompanyRepo, mockPromotionRepo, mockQueue)

	client, err := uc.Resume(ctx, lead.ID)

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, lead.Company.ID, client.ID)

	mockCompanyRepo.AssertNotCalled(t, "UpdateStatus")
	mockLeadRepo.AssertCalled(t, "UpdateStatus", ctx, lead.ID, entity.LeadStatusInactive)
	mockPromotionRepo.AssertCalled(t, "Delete", ctx, lead.ID)
}

// TestResumePromotionWithoutCheckpoint
func TestResumePromotionWithoutCheckpoint(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockCompanyRepo := new(MockCompanyRepository)
	mockPromotionRepo := new(MockPromotionAttemptRepository)

	mockPromotionRepo.On("FindByLeadID", ctx, "sem-checkpoint").Return(nil, entity.ErrNotFound)

	uc := usecase.NewPromoteLeadUseCase(mockLeadRepo, mockCompanyRepo, mockPromotionRepo, nil)

	client, err := uc.Resume(ctx, "sem-checkpoint")

	assert.Error(t, err)
	assert.Nil(t, client)

	var nfErr *usecase.NotFoundError
	assert.True(t, errors.As(err, &nfErr))
}
