package usecase

import (
	"context"

	"github.com/vendapro/crm-api/internal/entity"
	"github.com/vendapro/crm-api/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindAll(ctx context.Context) ([]entity.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type CompanyRepositoryInterface interface {
	Create(ctx context.Context, company *entity.Company) error
	FindByID(ctx context.Context, id string) (*entity.Company, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type LeadTaskRepositoryInterface interface {
	Create(ctx context.Context, task *entity.LeadTask) error
	FindByID(ctx context.Context, id string) (*entity.LeadTask, error)
	FindAll(ctx context.Context) ([]entity.LeadTask, error)
	Update(ctx context.Context, task *entity.LeadTask) error
	Delete(ctx context.Context, id string) error
}

// ClientRepositoryInterface lê a projeção de cliente sobre companies com
// status CLIENT. Só leitura: a promoção é quem cria clientes.
type ClientRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	FindAll(ctx context.Context) ([]entity.Client, error)
}

type ClientTaskRepositoryInterface interface {
	Create(ctx context.Context, task *entity.ClientTask) error
	FindByID(ctx context.Context, id string) (*entity.ClientTask, error)
	FindAll(ctx context.Context) ([]entity.ClientTask, error)
	Update(ctx context.Context, task *entity.ClientTask) error
	Delete(ctx context.Context, id string) error
}

type PromotionAttemptRepositoryInterface interface {
	Save(ctx context.Context, attempt *entity.PromotionAttempt) error
	FindByLeadID(ctx context.Context, leadID string) (*entity.PromotionAttempt, error)
	MarkCompanyPromoted(ctx context.Context, leadID string) error
	Delete(ctx context.Context, leadID string) error
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type QueueProducerInterface interface {
	PublishTaskEvent(ctx context.Context, payload queue.TaskEventPayload) error
	PublishPromotion(ctx context.Context, payload queue.PromotionPayload) error
}

type EmailService interface {
	SendClientWelcome(to, name, representative string) error
}
