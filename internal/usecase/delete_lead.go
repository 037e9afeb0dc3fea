package usecase

import (
	"context"
	"errors"

	"github.com/vendapro/crm-api/internal/entity"
)

// DeleteLeadUseCase remove o lead em definitivo. Arquivar esconde; deletar
// destrói. As tarefas do lead saem junto, senão viram referências quebradas
// no feed de notificações; a empresa vai junto enquanto ainda for ARCHIVED,
// porque ela só existe por causa do lead. Depois de promovida a CLIENT ela
// fica.
type DeleteLeadUseCase struct {
	LeadRepo      LeadRepositoryInterface
	CompanyRepo   CompanyRepositoryInterface
	TaskRepo      LeadTaskRepositoryInterface
	PromotionRepo PromotionAttemptRepositoryInterface
}

func NewDeleteLeadUseCase(
	leadRepo LeadRepositoryInterface,
	companyRepo CompanyRepositoryInterface,
	taskRepo LeadTaskRepositoryInterface,
	promotionRepo PromotionAttemptRepositoryInterface,
) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{
		LeadRepo:      leadRepo,
		CompanyRepo:   companyRepo,
		TaskRepo:      taskRepo,
		PromotionRepo: promotionRepo,
	}
}

func (uc *DeleteLeadUseCase) Execute(ctx context.Context, leadID string) error {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return &NotFoundError{Entity: "lead", ID: leadID}
		}
		return backendErr("delete lead", err)
	}

	tasks, err := uc.TaskRepo.FindAll(ctx)
	if err != nil {
		return backendErr("delete lead", err)
	}
	for i := range tasks {
		if tasks[i].LeadID != leadID {
			continue
		}
		if err := uc.TaskRepo.Delete(ctx, tasks[i].ID); err != nil {
			return backendErr("delete lead", err)
		}
	}

	// Um checkpoint de promoção abandonado também referencia o lead.
	_ = uc.PromotionRepo.Delete(ctx, leadID)

	if err := uc.LeadRepo.Delete(ctx, leadID); err != nil {
		return backendErr("delete lead", err)
	}

	if lead.Company.Status == entity.CompanyStatusArchived {
		if err := uc.CompanyRepo.Delete(ctx, lead.Company.ID); err != nil {
			return backendErr("delete lead", err)
		}
	}

	return nil
}
