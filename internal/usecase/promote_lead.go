package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vendapro/crm-api/internal/entity"
	"github.com/vendapro/crm-api/internal/infra/queue"
)

// PromoteLeadUseCase executa a promoção em dois passos que precisam valer
// como uma unidade: (a) empresa ARCHIVED -> CLIENT, (b) lead -> INACTIVE.
// Um checkpoint persistido por lead registra até onde a promoção chegou;
// se (a) passou e (b) falhou, o caller recebe PromotionIncompleteError e
// Resume retenta só o passo que faltou.
type PromoteLeadUseCase struct {
	LeadRepo      LeadRepositoryInterface
	CompanyRepo   CompanyRepositoryInterface
	PromotionRepo PromotionAttemptRepositoryInterface
	Queue         QueueProducerInterface
}

func NewPromoteLeadUseCase(
	leadRepo LeadRepositoryInterface,
	companyRepo CompanyRepositoryInterface,
	promotionRepo PromotionAttemptRepositoryInterface,
	producer QueueProducerInterface,
) *PromoteLeadUseCase {
	return &PromoteLeadUseCase{
		LeadRepo:      leadRepo,
		CompanyRepo:   companyRepo,
		PromotionRepo: promotionRepo,
		Queue:         producer,
	}
}

func (uc *PromoteLeadUseCase) Execute(ctx context.Context, leadID string) (*entity.Client, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// Lead inexistente: nada foi tocado, nem a empresa.
			return nil, &NotFoundError{Entity: "lead", ID: leadID}
		}
		return nil, backendErr("promote lead", err)
	}

	if lead.Status != entity.LeadStatusActive {
		return nil, &IllegalTransitionError{
			Entity: "lead",
			ID:     leadID,
			From:   lead.Status,
			To:     entity.LeadStatusInactive,
		}
	}

	attempt := &entity.PromotionAttempt{
		LeadID:    leadID,
		CompanyID: lead.Company.ID,
		CreatedAt: time.Now(),
	}
	if err := uc.PromotionRepo.Save(ctx, attempt); err != nil {
		return nil, backendErr("promote lead", err)
	}

	// Passo (a): empresa vira CLIENT.
	if err := uc.CompanyRepo.UpdateStatus(ctx, lead.Company.ID, entity.CompanyStatusClient); err != nil {
		// Nada foi promovido ainda; descarta o checkpoint e devolve a falha.
		_ = uc.PromotionRepo.Delete(ctx, leadID)
		return nil, backendErr("promote lead", err)
	}

	if err := uc.PromotionRepo.MarkCompanyPromoted(ctx, leadID); err != nil {
		// A empresa já mudou de status; daqui em diante qualquer falha é
		// promoção incompleta, nunca uma falha genérica.
		return nil, &PromotionIncompleteError{LeadID: leadID, CompanyID: lead.Company.ID, Cause: err}
	}

	// Passo (b): lead sai de cena.
	if err := uc.LeadRepo.UpdateStatus(ctx, leadID, entity.LeadStatusInactive); err != nil {
		return nil, &PromotionIncompleteError{LeadID: leadID, CompanyID: lead.Company.ID, Cause: err}
	}
	lead.Status = entity.LeadStatusInactive
	lead.Company.Status = entity.CompanyStatusClient

	// Os dois passos confirmaram; o checkpoint já cumpriu o papel. Se a
	// limpeza falhar, Resume encontra o lead inativo e só recolhe o resto.
	_ = uc.PromotionRepo.Delete(ctx, leadID)

	uc.publishPromotion(lead)

	return lead.Company.AsClient(lead.ContactLocation), nil
}

// Resume retoma uma promoção que parou no meio, retentando apenas o passo
// que faltou a partir do checkpoint persistido.
func (uc *PromoteLeadUseCase) Resume(ctx context.Context, leadID string) (*entity.Client, error) {
	attempt, err := uc.PromotionRepo.FindByLeadID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "promotion attempt", ID: leadID}
		}
		return nil, backendErr("resume promotion", err)
	}

	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "lead", ID: leadID}
		}
		return nil, backendErr("resume promotion", err)
	}

	if !attempt.CompanyPromoted {
		if err := uc.CompanyRepo.UpdateStatus(ctx, attempt.CompanyID, entity.CompanyStatusClient); err != nil {
			return nil, backendErr("resume promotion", err)
		}
		if err := uc.PromotionRepo.MarkCompanyPromoted(ctx, leadID); err != nil {
			return nil, &PromotionIncompleteError{LeadID: leadID, CompanyID: attempt.CompanyID, Cause: err}
		}
	}

	if lead.Status != entity.LeadStatusInactive {
		if err := uc.LeadRepo.UpdateStatus(ctx, leadID, entity.LeadStatusInactive); err != nil {
			return nil, &PromotionIncompleteError{LeadID: leadID, CompanyID: attempt.CompanyID, Cause: err}
		}
		lead.Status = entity.LeadStatusInactive
	}
	lead.Company.Status = entity.CompanyStatusClient

	_ = uc.PromotionRepo.Delete(ctx, leadID)

	uc.publishPromotion(lead)

	return lead.Company.AsClient(lead.ContactLocation), nil
}

func (uc *PromoteLeadUseCase) publishPromotion(lead *entity.Lead) {
	if uc.Queue == nil {
		return
	}
	payload := queue.PromotionPayload{
		LeadID:         lead.ID,
		ClientID:       lead.Company.ID,
		Name:           lead.Company.Name,
		Representative: lead.Company.RepresentativeName,
		Email:          lead.Company.Email,
	}
	go func() {
		if err := uc.Queue.PublishPromotion(context.Background(), payload); err != nil {
			log.Error().Err(err).
				Str("lead_id", payload.LeadID).
				Str("client_id", payload.ClientID).
				Msg("falha ao publicar promoção; boas-vindas não serão enviadas")
		}
	}()
}
