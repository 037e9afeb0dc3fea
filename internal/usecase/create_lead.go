package usecase

import (
	"context"

	"github.com/vendapro/crm-api/internal/entity"
)

type CreateLeadUseCase struct {
	LeadRepo    LeadRepositoryInterface
	CompanyRepo CompanyRepositoryInterface
}

func NewCreateLeadUseCase(leadRepo LeadRepositoryInterface, companyRepo CompanyRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		LeadRepo:    leadRepo,
		CompanyRepo: companyRepo,
	}
}

// Execute valida tudo antes de escrever qualquer coisa. A empresa nasce
// ARCHIVED e o lead ACTIVE, não importa o que o caller mandar; o timestamp
// de criação é carimbado aqui, não no front.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*LeadOutput, error) {
	if fieldErrors := ValidateCreateLeadInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	company := entity.NewCompany(
		input.CompanyName,
		input.CNPJ,
		input.Description,
		input.CompanyEmail,
		input.CompanyPhone,
		input.BusinessArea,
	)
	company.RazaoSocial = input.RazaoSocial
	company.RepresentativeName = input.RepresentativeName

	lead := entity.NewLead(company, input.CommunicationChannel, input.ContactLocation, input.Offer)

	// Empresa e lead são duas linhas; se a segunda escrita falhar a primeira
	// não pode sobrar órfã no banco.
	txn := NewTransaction()

	txn.AddOperation("create_company", func(ctx context.Context) error {
		return uc.CompanyRepo.Create(ctx, company)
	})
	txn.AddCompensation("delete_company", func(ctx context.Context) error {
		return uc.CompanyRepo.Delete(ctx, company.ID)
	})
	txn.AddOperation("create_lead", func(ctx context.Context) error {
		return uc.LeadRepo.Create(ctx, lead)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, backendErr("create lead", err)
	}

	out := NewLeadOutput(lead)
	return &out, nil
}
