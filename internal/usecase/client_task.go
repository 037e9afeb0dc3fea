package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/vendapro/crm-api/internal/entity"
)

// ClientTaskUseCase cobre criação e manutenção das tarefas de clientes
// promovidos. Mesmo formato das tarefas de lead, com uma regra a mais:
// tarefa que saiu de IN_PROGRESS nunca volta (arquivamento só tem ida).
type ClientTaskUseCase struct {
	TaskRepo   ClientTaskRepositoryInterface
	ClientRepo ClientRepositoryInterface
}

func NewClientTaskUseCase(taskRepo ClientTaskRepositoryInterface, clientRepo ClientRepositoryInterface) *ClientTaskUseCase {
	return &ClientTaskUseCase{TaskRepo: taskRepo, ClientRepo: clientRepo}
}

func (uc *ClientTaskUseCase) Create(ctx context.Context, input CreateClientTaskInput) (*entity.ClientTask, error) {
	if fieldErrors := ValidateCreateClientTaskInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	if _, err := uc.ClientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "client", ID: input.ClientID}
		}
		return nil, backendErr("create client task", err)
	}

	task := entity.NewClientTask(
		input.ClientID,
		input.Theme,
		input.ProjectDescription,
		input.Notes,
		input.StartDateTime,
		input.EndDateTime,
	)

	if err := uc.TaskRepo.Create(ctx, task); err != nil {
		return nil, backendErr("create client task", err)
	}

	return task, nil
}

func (uc *ClientTaskUseCase) List(ctx context.Context) ([]entity.ClientTask, error) {
	tasks, err := uc.TaskRepo.FindAll(ctx)
	if err != nil {
		return nil, backendErr("list client tasks", err)
	}
	return tasks, nil
}

func (uc *ClientTaskUseCase) Delete(ctx context.Context, taskID string) error {
	if _, err := uc.TaskRepo.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return &NotFoundError{Entity: "client task", ID: taskID}
		}
		return backendErr("delete client task", err)
	}

	if err := uc.TaskRepo.Delete(ctx, taskID); err != nil {
		return backendErr("delete client task", err)
	}

	return nil
}

func (uc *ClientTaskUseCase) Update(ctx context.Context, taskID string, input UpdateClientTaskInput) (*entity.ClientTask, error) {
	task, err := uc.TaskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "client task", ID: taskID}
		}
		return nil, backendErr("update client task", err)
	}

	if input.Status != nil {
		if !entity.IsValidTaskStatus(*input.Status) {
			return nil, &ValidationError{Fields: []FieldError{{"status", "is invalid"}}}
		}
		// O front antigo escrevia essa guarda comparando o mesmo campo com
		// dois valores diferentes, então ela nunca disparava. Aqui vale a
		// regra declarada: tarefa arquivada não volta a IN_PROGRESS.
		if entity.IsTerminalTaskStatus(task.Status) && *input.Status == entity.TaskStatusInProgress {
			return nil, &IllegalTransitionError{
				Entity: "client task",
				ID:     taskID,
				From:   task.Status,
				To:     *input.Status,
			}
		}
	}

	applyClientTaskPatch(task, input)
	task.UpdatedAt = time.Now()

	if err := uc.TaskRepo.Update(ctx, task); err != nil {
		return nil, backendErr("update client task", err)
	}

	return task, nil
}

func applyClientTaskPatch(task *entity.ClientTask, input UpdateClientTaskInput) {
	if input.Theme != nil {
		task.Theme = *input.Theme
	}
	if input.StartDateTime != nil {
		task.StartDateTime = *input.StartDateTime
	}
	if input.EndDateTime != nil {
		task.EndDateTime = *input.EndDateTime
	}
	if input.ProjectDescription != nil {
		task.ProjectDescription = *input.ProjectDescription
	}
	if input.Notes != nil {
		task.Notes = *input.Notes
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
}
