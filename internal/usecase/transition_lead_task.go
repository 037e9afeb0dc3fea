package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vendapro/crm-api/internal/entity"
	"github.com/vendapro/crm-api/internal/infra/queue"
)

type TransitionLeadTaskUseCase struct {
	TaskRepo LeadTaskRepositoryInterface
	Queue    QueueProducerInterface
}

func NewTransitionLeadTaskUseCase(taskRepo LeadTaskRepositoryInterface, producer QueueProducerInterface) *TransitionLeadTaskUseCase {
	return &TransitionLeadTaskUseCase{TaskRepo: taskRepo, Queue: producer}
}

// Execute move a tarefa para CANCELLED ou COMPLETED. Repetir a transição
// para o status terminal em que a tarefa já está é sucesso sem efeito;
// pular de um terminal para outro, não.
func (uc *TransitionLeadTaskUseCase) Execute(ctx context.Context, taskID, newStatus string) (*entity.LeadTask, error) {
	if !entity.IsValidTaskStatus(newStatus) || newStatus == entity.TaskStatusInProgress {
		return nil, &ValidationError{Fields: []FieldError{{"status", "must be CANCELLED or COMPLETED"}}}
	}

	task, err := uc.TaskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "lead task", ID: taskID}
		}
		return nil, backendErr("transition lead task", err)
	}

	if task.Status == newStatus {
		return task, nil
	}

	if !entity.CanTransitionTask(task.Status, newStatus) {
		return nil, &IllegalTransitionError{
			Entity: "lead task",
			ID:     taskID,
			From:   task.Status,
			To:     newStatus,
		}
	}

	task.Status = newStatus
	task.UpdatedAt = time.Now()

	if err := uc.TaskRepo.Update(ctx, task); err != nil {
		return nil, backendErr("transition lead task", err)
	}

	if uc.Queue != nil && newStatus == entity.TaskStatusCancelled {
		payload := queue.TaskEventPayload{
			TaskID:      task.ID,
			LeadID:      task.LeadID,
			Type:        queue.TaskEventCancelled,
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
