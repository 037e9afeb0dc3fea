package usecase

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError carrega a lista de campos rejeitados. Nenhuma escrita
// acontece quando a validação falha.
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" ("+f.Message+")")
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NotFoundError indica que a entidade referenciada não existe.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// SchedulingConflictError é a quebra da regra de agenda: mesma empresa,
// mesmo dia. Carrega a tarefa conflitante mais antiga para diagnóstico.
type SchedulingConflictError struct {
	LeadID            string
	Date              time.Time
	ConflictingTaskID string
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("lead %s already has task %s scheduled on %s",
		e.LeadID, e.ConflictingTaskID, e.Date.Format("2006-01-02"))
}

// IllegalTransitionError indica uma mudança de status fora da máquina de
// estados da entidade.
type IllegalTransitionError struct {
	Entity string
	ID     string
	From   string
	To     string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s %s: illegal transition %s -> %s", e.Entity, e.ID, e.From, e.To)
}

// PromotionIncompleteError é o caso da promoção pela metade: a empresa já
// virou CLIENT mas o lead continua ativo. Guarda o necessário para retomar
// o passo que faltou; nunca pode ser engolido como falha genérica.
type PromotionIncompleteError struct {
	LeadID    string
	CompanyID string
	Cause     error
}

func (e *PromotionIncompleteError) Error() string {
	return fmt.Sprintf("promotion of lead %s incomplete: company %s already promoted, lead deactivation failed: %v",
		e.LeadID, e.CompanyID, e.Cause)
}

func (e *PromotionIncompleteError) Unwrap() error { return e.Cause }

// BackendUnavailableError embrulha falhas de transporte/armazenamento.
// Leituras idempotentes podem ser repetidas; escritas não, sem antes checar
// o estado resultante.
type BackendUnavailableError struct {
	Op    string
	Cause error
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("backend unavailable during %s: %v", e.Op, e.Cause)
}

func (e *BackendUnavailableError) Unwrap() error { return e.Cause }

func backendErr(op string, cause error) error {
	return &BackendUnavailableError{Op: op, Cause: cause}
}
