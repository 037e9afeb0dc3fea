package usecase

import (
	"context"
	"errors"

	"github.com/vendapro/crm-api/internal/entity"
)

type DeleteLeadTaskUseCase struct {
	TaskRepo LeadTaskRepositoryInterface
}

func NewDeleteLeadTaskUseCase(taskRepo LeadTaskRepositoryInterface) *DeleteLeadTaskUseCase {
	return &DeleteLeadTaskUseCase{TaskRepo: taskRepo}
}

// Execute remove a tarefa. Deletar libera o dia na agenda do lead; não é
// transição de status, então não passa pela máquina de estados.
func (uc *DeleteLeadTaskUseCase) Execute(ctx context.Context, taskID string) error {
	if _, err := uc.TaskRepo.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return &NotFoundError{Entity: "lead task", ID: taskID}
		}
		return backendErr("delete lead task", err)
	}

	if err := uc.TaskRepo.Delete(ctx, taskID); err != nil {
		return backendErr("delete lead task", err)
	}

	return nil
}
