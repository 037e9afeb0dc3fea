package entity

import "time"

// PromotionAttempt é o checkpoint persistido de uma promoção em andamento,
// chaveado pelo lead. Fica no banco até os dois passos confirmarem:
// (a) empresa ARCHIVED -> CLIENT, (b) lead ACTIVE -> INACTIVE.
// Se (a) passou e (b) falhou, o registro diz exatamente o que falta retomar.
type PromotionAttempt struct {
	LeadID          string    `json:"lead_id"`
	CompanyID       string    `json:"company_id"`
	CompanyPromoted bool      `json:"company_promoted"`
	CreatedAt       time.Time `json:"created_at"`
}
