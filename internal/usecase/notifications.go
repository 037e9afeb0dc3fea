package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vendapro/crm-api/internal/entity"
)

// NotificationWatermark é o estado mínimo que sobrevive entre recomputações:
// a última contagem e a flag de não lido. Não existe contador escondido;
// Compute é função pura de (leads, tarefas, data, watermark anterior).
type NotificationWatermark struct {
	Count  int
	Unread bool
}

// ComputeNotifications deriva a contagem de atenção do estado atual:
// leads ativos sem nenhuma tarefa + tarefas em andamento vencendo hoje ou
// atrasadas (comparação por dia de calendário nos dois lados).
//
// A flag de não lido trava em true quando a contagem sobe em relação ao
// watermark anterior; queda de contagem não limpa, só o acknowledgment.
//
// Tarefa apontando para lead que não existe é erro de integridade, não um
// pulo silencioso.
func ComputeNotifications(leads []entity.Lead, tasks []entity.LeadTask, asOf time.Time, prev NotificationWatermark) (NotificationWatermark, error) {
	today := truncateToDay(asOf)

	tasksPerLead := make(map[string]int, len(leads))
	leadExists := make(map[string]bool, len(leads))
	for i := range leads {
		leadExists[leads[i].ID] = true
	}

	count := 0
	for i := range tasks {
		t := &tasks[i]
		if !leadExists[t.LeadID] {
			return prev, fmt.Errorf("lead task %s references missing lead %s", t.ID, t.LeadID)
		}
		tasksPerLead[t.LeadID]++

		if t.Status != entity.TaskStatusInProgress {
			continue
		}
		if !truncateToDay(t.TaskBegin).After(today) {
			count++
		}
	}

	for i := range leads {
		l := &leads[i]
		if l.Status == entity.LeadStatusActive && tasksPerLead[l.ID] == 0 {
			count++
		}
	}

	next := NotificationWatermark{
		Count:  count,
		Unread: prev.Unread || count > prev.Count,
	}
	return next, nil
}

// NotificationsUseCase recomputa a view derivada sob demanda e guarda
// apenas o último watermark produzido.
type NotificationsUseCase struct {
	LeadRepo LeadRepositoryInterface
	TaskRepo LeadTaskRepositoryInterface

	mu        sync.Mutex
	watermark NotificationWatermark
}

func NewNotificationsUseCase(leadRepo LeadRepositoryInterface, taskRepo LeadTaskRepositoryInterface) *NotificationsUseCase {
	return &NotificationsUseCase{LeadRepo: leadRepo, TaskRepo: taskRepo}
}

func (uc *NotificationsUseCase) Compute(ctx context.Context, asOf time.Time) (*NotificationsOutput, error) {
	leads, err := uc.LeadRepo.FindAll(ctx)
	if err != nil {
		return nil, backendErr("compute notifications", err)
	}
	tasks, err := uc.TaskRepo.FindAll(ctx)
	if err != nil {
		return nil, backendErr("compute notifications", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next, err := ComputeNotifications(leads, tasks, asOf, uc.watermark)
	if err != nil {
		return nil, err
	}
	uc.watermark = next

	return &NotificationsOutput{
		AttentionCount: next.Count,
		HasUnread:      next.Unread,
	}, nil
}

// Acknowledge limpa a flag de não lido; é o único jeito de limpá-la.
func (uc *NotificationsUseCase) Acknowledge() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.watermark.Unread = false
}
