package usecase

import (
	"context"
	"errors"

	"github.com/vendapro/crm-api/internal/entity"
)

type ArchiveLeadUseCase struct {
	LeadRepo LeadRepositoryInterface
}

func NewArchiveLeadUseCase(leadRepo LeadRepositoryInterface) *ArchiveLeadUseCase {
	return &ArchiveLeadUseCase{LeadRepo: leadRepo}
}

// Execute marca o lead como INACTIVE. Arquivar de novo um lead já inativo é
// sucesso sem efeito, não erro. As tarefas do lead ficam como estão.
func (uc *ArchiveLeadUseCase) Execute(ctx context.Context, leadID string) (*LeadOutput, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "lead", ID: leadID}
		}
		return nil, backendErr("archive lead", err)
	}

	if lead.Status == entity.LeadStatusInactive {
		out := NewLeadOutput(lead)
		return &out, nil
	}

	if err := uc.LeadRepo.UpdateStatus(ctx, leadID, entity.LeadStatusInactive); err != nil {
		return nil, backendErr("archive lead", err)
	}
	lead.Status = entity.LeadStatusInactive

	out := NewLeadOutput(lead)
	return &out, nil
}
