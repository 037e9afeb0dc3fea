package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vendapro/crm-api/internal/entity"
	"github.com/vendapro/crm-api/internal/infra/queue"
)

type UpdateLeadTaskUseCase struct {
	TaskRepo LeadTaskRepositoryInterface
	Queue    QueueProducerInterface
}

func NewUpdateLeadTaskUseCase(taskRepo LeadTaskRepositoryInterface, producer QueueProducerInterface) *UpdateLeadTaskUseCase {
	return &UpdateLeadTaskUseCase{TaskRepo: taskRepo, Queue: producer}
}

// Execute aplica um patch parcial, campo a campo. Mudança de data aqui não
// passa pela checagem de conflito; essa assimetria vem da regra original e
// fica até o produto mandar mudar.
func (uc *UpdateLeadTaskUseCase) Execute(ctx context.Context, taskID string, input UpdateLeadTaskInput) (*entity.LeadTask, error) {
	task, err := uc.TaskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "lead task", ID: taskID}
		}
		return nil, backendErr("update lead task", err)
	}

	if input.Status != nil && !entity.IsValidTaskStatus(*input.Status) {
		return nil, &ValidationError{Fields: []FieldError{{"status", "is invalid"}}}
	}

	applyLeadTaskPatch(task, input)
	task.UpdatedAt = time.Now()

	if err := uc.TaskRepo.Update(ctx, task); err != nil {
		return nil, backendErr("update lead task", err)
	}

	if uc.Queue != nil {
		payload := queue.TaskEventPayload{
			TaskID:      task.ID,
			LeadID:      task.LeadID,
			Type:        queue.TaskEventEdited,
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

	return task, nil
}

func applyLeadTaskPatch(task *entity.LeadTask, input UpdateLeadTaskInput) {
	if input.Contact != nil {
		task.Contact = *input.Contact
	}
	if input.Place != nil {
		task.Place = *input.Place
	}
	if input.ContactMethod != nil {
		task.ContactMethod = *input.ContactMethod
	}
	if input.Environment != nil {
		task.Environment = *input.Environment
	}
	if input.Location != nil {
		task.Location = *input.Location
	}
	if input.Feedback != nil {
		task.Feedback = *input.Feedback
	}
	if input.TaskBegin != nil {
		task.TaskBegin = *input.TaskBegin
	}
	if input.TaskEnd != nil {
		task.TaskEnd = *input.TaskEnd
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
}
