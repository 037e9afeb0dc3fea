package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/vendapro/crm-api/internal/entity"
	"github.com/vendapro/crm-api/internal/infra/queue"
)

type CreateLeadTaskUseCase struct {
	TaskRepo LeadTaskRepositoryInterface
	LeadRepo LeadRepositoryInterface
	Queue    QueueProducerInterface
}

func NewCreateLeadTaskUseCase(
	taskRepo LeadTaskRepositoryInterface,
	leadRepo LeadRepositoryInterface,
	producer QueueProducerInterface,
) *CreateLeadTaskUseCase {
	return &CreateLeadTaskUseCase{
		TaskRepo: taskRepo,
		LeadRepo: leadRepo,
		Queue:    producer,
	}
}

// Execute valida, confere a agenda e só então grava. A regra de agenda:
// uma empresa não pode ter duas tarefas no mesmo dia de calendário, não
// importa a hora. Tarefas de leads diferentes no mesmo dia passam.
func (uc *CreateLeadTaskUseCase) Execute(ctx context.Context, input CreateLeadTaskInput) (*entity.LeadTask, error) {
	if fieldErrors := ValidateCreateLeadTaskInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	if _, err := uc.LeadRepo.FindByID(ctx, input.LeadID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "lead", ID: input.LeadID}
		}
		return nil, backendErr("create lead task", err)
	}

	existing, err := uc.TaskRepo.FindAll(ctx)
	if err != nil {
		return nil, backendErr("create lead task", err)
	}

	// Entre várias conflitantes, reporta a criada primeiro.
	var conflicting *entity.LeadTask
	for i := range existing {
		t := &existing[i]
		if t.LeadID != input.LeadID {
			continue
		}
		if !sameCalendarDay(t.TaskBegin, input.TaskBegin) {
			continue
		}
		if conflicting == nil || t.CreatedAt.Before(conflicting.CreatedAt) {
			conflicting = t
		}
	}
	if conflicting != nil {
		return nil, &SchedulingConflictError{
			LeadID:            input.LeadID,
			Date:              truncateToDay(input.TaskBegin),
			ConflictingTaskID: conflicting.ID,
		}
	}

	task := entity.NewLeadTask(
		input.LeadID,
		input.Contact,
		input.Place,
		input.ContactMethod,
		input.Environment,
		input.Location,
		input.Feedback,
		input.TaskBegin,
		input.TaskEnd,
	)

	if err := uc.TaskRepo.Create(ctx, task); err != nil {
		return nil, backendErr("create lead task", err)
	}

	uc.publishEvent(task, queue.TaskEventAdded)

	return task, nil
}

func (uc *CreateLeadTaskUseCase) publishEvent(task *entity.LeadTask, eventType string) {
	if uc.Queue == nil {
		return
	}
	payload := queue.TaskEventPayload{
		TaskID:      task.ID,
		LeadID:      task.LeadID,
		Type:        eventType,
		Description: task.Feedback,
		OccurredAt:  task.UpdatedAt,
	}
	go func() {
		if err := uc.Queue.PublishTaskEvent(context.Background(), payload); err != nil {
			log.Error().Err(err).
				Str("task_id", payload.TaskID).
				Str("event", payload.Type).
				Msg("falha ao publicar evento de tarefa")
		}
	}()
}
