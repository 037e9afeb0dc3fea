package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	LeadStatusActive   = "ACTIVE"
	LeadStatusInactive = "INACTIVE"
)

type Lead struct {
	ID                   string    `json:"id"`
	Company              *Company  `json:"company"`
	CommunicationChannel string    `json:"communication_channel"`
	ContactLocation      string    `json:"contact_location"`
	Offer                string    `json:"offer"`
	Status               string    `json:"status"` // ACTIVE, INACTIVE
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewLead cria o lead já ativo, com a empresa arquivada.
func NewLead(company *Company, channel, contactLocation, offer string) *Lead {
	now := time.Now()
	return &Lead{
		ID:                   uuid.New().String(),
		Company:              company,
		CommunicationChannel: channel,
		ContactLocation:      contactLocation,
		Offer:                offer,
		Status:               LeadStatusActive,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// IsLead é derivado do status. O front antigo carregava `isLead` como campo
// separado e dependia de disciplina para os dois não divergirem; aqui só
// existe o status e o booleano é uma view.
func (l *Lead) IsLead() bool {
	return l.Status == LeadStatusActive
}
