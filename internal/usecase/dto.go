package usecase

import (
	"time"

	"github.com/vendapro/crm-api/internal/entity"
)

type CreateLeadInput struct {
	CompanyName          string `json:"company_name"`
	CNPJ                 string `json:"cnpj"`
	RazaoSocial          string `json:"razao_social"`
	RepresentativeName   string `json:"representative_name"`
	Description          string `json:"description"`
	CompanyEmail         string `json:"company_email"`
	CompanyPhone         string `json:"company_phone"`
	BusinessArea         string `json:"business_area"`
	CommunicationChannel string `json:"communication_channel"`
	ContactLocation      string `json:"contact_location"`
	Offer                string `json:"offer"`
}

// LeadOutput expõe o lead com o booleano is_lead derivado do status,
// para os consumidores que ainda dependem do campo antigo.
type LeadOutput struct {
	*entity.Lead
	IsLead bool `json:"is_lead"`
}

func NewLeadOutput(lead *entity.Lead) LeadOutput {
	return LeadOutput{Lead: lead, IsLead: lead.IsLead()}
}

type CreateLeadTaskInput struct {
	Contact       string    `json:"contact"`
	Place         string    `json:"place"`
	ContactMethod string    `json:"contact_method"`
	Environment   string    `json:"environment"`
	Location      string    `json:"location"`
	Feedback      string    `json:"feedback"`
	TaskBegin     time.Time `json:"task_begin"`
	TaskEnd       time.Time `json:"task_end"`
	LeadID        string    `json:"lead_id"`
}

// UpdateLeadTaskInput é um patch parcial: só os ponteiros não nulos são
// aplicados. De propósito não há rechecagem de conflito de agenda aqui;
// só a criação valida o dia.
type UpdateLeadTaskInput struct {
	Contact       *string    `json:"contact,omitempty"`
	Place         *string    `json:"place,omitempty"`
	ContactMethod *string    `json:"contact_method,omitempty"`
	Environment   *string    `json:"environment,omitempty"`
	Location      *string    `json:"location,omitempty"`
	Feedback      *string    `json:"feedback,omitempty"`
	TaskBegin     *time.Time `json:"task_begin,omitempty"`
	TaskEnd       *time.Time `json:"task_end,omitempty"`
	Status        *string    `json:"status,omitempty"`
}

type CreateClientTaskInput struct {
	Theme              string    `json:"theme"`
	StartDateTime      time.Time `json:"start_date_time"`
	EndDateTime        time.Time `json:"end_date_time"`
	ProjectDescription string    `json:"project_description"`
	Notes              string    `json:"notes"`
	ClientID           string    `json:"client_id"`
}

type UpdateClientTaskInput struct {
	Theme              *string    `json:"theme,omitempty"`
	StartDateTime      *time.Time `json:"start_date_time,omitempty"`
	EndDateTime        *time.Time `json:"end_date_time,omitempty"`
	ProjectDescription *string    `json:"project_description,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	Status             *string    `json:"status,omitempty"`
}

type NotificationsOutput struct {
	AttentionCount int  `json:"attention_count"`
	HasUnread      bool `json:"has_unread"`
}

type RegisterInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}
