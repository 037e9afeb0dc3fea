package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vendapro/crm-api/internal/entity"
	"github.com/vendapro/crm-api/internal/infra/queue"
	"github.com/vendapro/crm-api/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLeadTaskRepository
type MockLeadTaskRepository struct {
	mock.Mock
}

func (m *MockLeadTaskRepository) Create(ctx context.Context, task *entity.LeadTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockLeadTaskRepository) FindByID(ctx context.Context, id string) (*entity.LeadTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadTask), args.Error(1)
}

func (m *MockLeadTaskRepository) FindAll(ctx context.Context) ([]entity.LeadTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeadTask), args.Error(1)
}

func (m *MockLeadTaskRepository) Update(ctx context.Context, task *entity.LeadTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockLeadTaskRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Client), args.Error(1)
}

// MockClientTaskRepository
type MockClientTaskRepository struct {
	mock.Mock
}

func (m *MockClientTaskRepository) Create(ctx context.Context, task *entity.ClientTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockClientTaskRepository) FindByID(ctx context.Context, id string) (*entity.ClientTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ClientTask), args.Error(1)
}

func (m *MockClientTaskRepository) FindAll(ctx context.Context) ([]entity.ClientTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ClientTask), args.Error(1)
}

func (m *MockClientTaskRepository) Update(ctx context.Context, task *entity.ClientTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockClientTaskRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPromotionAttemptRepository
type MockPromotionAttemptRepository struct {
	mock.Mock
}

func (m *MockPromotionAttemptRepository) Save(ctx context.Context, attempt *entity.PromotionAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockPromotionAttemptRepository) FindByLeadID(ctx context.Context, leadID string) (*entity.PromotionAttempt, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PromotionAttempt), args.Error(1)
}

func (m *MockPromotionAttemptRepository) MarkCompanyPromoted(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

func (m *MockPromotionAttemptRepository) Delete(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishTaskEvent(ctx context.Context, payload queue.TaskEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockQueueProducer) PublishPromotion(ctx context.Context, payload queue.PromotionPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// validLeadInput monta um input de criação de lead que passa em todas as
// validações; os testes sobrescrevem só o campo em jogo.
func validLeadInput() usecase.CreateLeadInput {
	return usecase.CreateLeadInput{
		CompanyName:          "Padaria Dois Irmãos",
		CNPJ:                 "12.345.678/0001-95",
		RazaoSocial:          "Dois Irmãos Alimentos LTDA",
		RepresentativeName:   "Carlos Pereira",
		Description:          "Padaria de bairro com três filiais",
		CompanyEmail:         "contato@doisirmaos.com.br",
		CompanyPhone:         "(11) 98765-4321",
		BusinessArea:         "Alimentação",
		CommunicationChannel: "Instagram",
		ContactLocation:      "São Paulo - SP",
		Offer:                "Pacote de gestão de pedidos",
	}
}
