package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elisoft-engineer/todo-api/internal/models"
	"github.com/elisoft-engineer/todo-api/internal/repository"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
)

// TransitionIntent selects which transition table a status change
// request uses. Exactly one intent applies per request.
type TransitionIntent int

const (
	// IntentAdvance moves a task forward: todo → doing → done.
	IntentAdvance TransitionIntent = iota
	// IntentHold parks a task that is not yet done.
	IntentHold
)

// NextStatus applies the transition table for the given intent to the
// current status. It returns the resulting status, the user-facing
// message, and whether the status actually changed. The switch is
// exhaustive over the four defined states.
func NextStatus(current models.TaskStatus, intent TransitionIntent) (models.TaskStatus, string, bool, error) {
	if intent == IntentHold {
		switch current {
		case models.StatusTodo, models.StatusDoing:
			return models.StatusOnHold, "Task has been put on-hold", true, nil
		case models.StatusDone, models.StatusOnHold:
			return current, fmt.Sprintf("Task is already %s", current), false, nil
		}
		return current, "", false, fmt.Errorf("unhandled task status %q", current)
	}

	switch current {
	case models.StatusTodo:
		return models.StatusDoing, "Task has been moved to `doing`", true, nil
	case models.StatusDoing:
		return models.StatusDone, "Task has been moved to `done`", true, nil
	case models.StatusDone:
		return current, "Task is already done", false, nil
	case models.StatusOnHold:
		return current, "Task is on hold", false, nil
	}
	return current, "", false, fmt.Errorf("unhandled task status %q", current)
}

// TaskService defines task operations.
type TaskService interface {
	Create(ctx context.Context, owner *models.User, detail string, priority int) (*models.Task, error)
	ListByStatus(ctx context.Context, ownerID uuid.UUID, status string) ([]models.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, task *models.Task, detail string, priority int) error
	Delete(ctx context.Context, task *models.Task) error
	Transition(ctx context.Context, task *models.Task, intent TransitionIntent) (string, error)
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService instance.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

func (s *taskService) Create(ctx context.Context, owner *models.User, detail string, priority int) (*models.Task, error) {
	task := &models.Task{
		Detail:   detail,
		Priority: priority,
		Status:   models.StatusTodo,
		UserID:   owner.ID,
		User:     *owner,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListByStatus(ctx context.Context, ownerID uuid.UUID, status string) ([]models.Task, error) {
	parsed, err := models.ParseTaskStatus(status)
	if err != nil {
		return nil, ErrInvalidStatus
	}
	return s.taskRepo.ListByOwnerAndStatus(ctx, ownerID, parsed)
}

func (s *taskService) Get(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, task *models.Task, detail string, priority int) error {
	task.Detail = detail
	task.Priority = priority
	return s.taskRepo.Update(ctx, task)
}

func (s *taskService) Delete(ctx context.Context, task *models.Task) error {
	return s.taskRepo.Delete(ctx, task)
}

func (s *taskService) Transition(ctx context.Context, task *models.Task, intent TransitionIntent) (string, error) {
	next, message, changed, err := NextStatus(task.Status, intent)
	if err != nil {
		return "", err
	}
	if changed {
		task.Status = next
		if err := s.taskRepo.Update(ctx, task); err != nil {
			return "", err
		}
	}
	return message, nil
}
