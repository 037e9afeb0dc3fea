package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status compartilhado entre tarefas de lead e de cliente.
const (
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCancelled  = "CANCELLED"
	TaskStatusCompleted  = "COMPLETED"
)

// TaskTransitions define os destinos válidos a partir de cada status.
// CANCELLED e COMPLETED são finais.
var TaskTransitions = map[string]map[string]bool{
	TaskStatusInProgress: {TaskStatusCancelled: true, TaskStatusCompleted: true},
	TaskStatusCancelled:  {},
	TaskStatusCompleted:  {},
}

func CanTransitionTask(current, to string) bool {
	nexts, ok := TaskTransitions[current]
	if !ok {
		return false
	}
	return nexts[to]
}

func IsTerminalTaskStatus(status string) bool {
	return status == TaskStatusCancelled || status == TaskStatusCompleted
}

func IsValidTaskStatus(status string) bool {
	_, ok := TaskTransitions[status]
	return ok
}

// LeadTask é um compromisso agendado contra um lead (reunião, contato).
// Referencia o lead por id, sem dono.
type LeadTask struct {
	ID            string    `json:"id"`
	Contact       string    `json:"contact"`
	Place         string    `json:"place"`
	ContactMethod string    `json:"contact_method"`
	Environment   string    `json:"environment"`
	Location      string    `json:"location"`
	Feedback      string    `json:"feedback"` // texto da proposta
	TaskBegin     time.Time `json:"task_begin"`
	TaskEnd       time.Time `json:"task_end"`
	LeadID        string    `json:"lead_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewLeadTask cria a tarefa já em andamento, ignorando status vindo do caller.
func NewLeadTask(leadID, contact, place, contactMethod, environment, location, feedback string, begin, end time.Time) *LeadTask {
	now := time.Now()
	return &LeadTask{
		ID:            uuid.New().String(),
		Contact:       contact,
		Place:         place,
		ContactMethod: contactMethod,
		Environment:   environment,
		Location:      location,
		Feedback:      feedback,
		TaskBegin:     begin,
		TaskEnd:       end,
		LeadID:        leadID,
		Status:        TaskStatusInProgress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ClientTask é o equivalente para clientes promovidos. A diferença de regra:
// depois que sai de IN_PROGRESS a tarefa nunca volta (sem desarquivar).
type ClientTask struct {
	ID                 string    `json:"id"`
	Theme              string    `json:"theme"`
	StartDateTime      time.Time `json:"start_date_time"`
	EndDateTime        time.Time `json:"end_date_time"`
	ProjectDescription string    `json:"project_description"`
	Notes              string    `json:"notes"`
	ClientID           string    `json:"client_id"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewClientTask(clientID, theme, projectDescription, notes string, start, end time.Time) *ClientTask {
	now := time.Now()
	return &ClientTask{
		ID:                 uuid.New().String(),
		Theme:              theme,
		StartDateTime:      start,
		EndDateTime:        end,
		ProjectDescription: projectDescription,
		Notes:              notes,
		ClientID:           clientID,
		Status:             TaskStatusInProgress,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
