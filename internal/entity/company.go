package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status da empresa dentro do funil.
const (
	CompanyStatusArchived = "ARCHIVED" // empresa de um lead ainda não convertido
	CompanyStatusClient   = "CLIENT"   // empresa promovida a cliente
)

type Company struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	CNPJ               string    `json:"cnpj"` // aceita CNPJ ou CPF
	RazaoSocial        string    `json:"razao_social,omitempty"`
	RepresentativeName string    `json:"representative_name,omitempty"`
	Description        string    `json:"description"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	BusinessArea       string    `json:"business_area"`
	Status             string    `json:"status"` // ARCHIVED, CLIENT
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewCompany monta a empresa de um lead recém criado.
// O status inicial é sempre ARCHIVED, independente do que o caller mandar.
func NewCompany(name, cnpj, description, email, phone, businessArea string) *Company {
	now := time.Now()
	return &Company{
		ID:           uuid.New().String(),
		Name:         name,
		CNPJ:         cnpj,
		Description:  description,
		Email:        email,
		Phone:        phone,
		BusinessArea: businessArea,
		Status:       CompanyStatusArchived,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Client é a projeção da empresa depois da promoção.
// É o que o front de clientes consome; não tem dono próprio no banco,
// é sempre derivada da linha em companies com status CLIENT.
type Client struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Representative string `json:"representative"`
	CNPJ           string `json:"cnpj"`
	Location       string `json:"location"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// AsClient projeta a empresa no papel de cliente.
func (c *Company) AsClient(location string) *Client {
	return &Client{
		ID:             c.ID,
		Name:           c.Name,
		Representative: c.RepresentativeName,
		CNPJ:           c.CNPJ,
		Location:       location,
		Email:          c.Email,
		Phone:          c.Phone,
	}
}
