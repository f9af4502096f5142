package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/elisoft-engineer/todo-api/internal/models"
)

// TaskRepository defines the interface for task data operations.
type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status models.TaskStatus) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, task *models.Task) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository instance.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Preload("User").First(&task, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find task by id %s: %w", id, err)
	}
	return &task, nil
}

func (r *taskRepository) ListByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status models.TaskStatus) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND status = ?", ownerID, status).
		Order("priority DESC, created_at").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for user %s: %w", ownerID, err)
	}
	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	// The owner row already exists; never write through the association.
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error; err != nil {
		return fmt.Errorf("failed to update task id %s: %w", task.ID, err)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Delete(task).Error; err != nil {
		return fmt.Errorf("failed to delete task id %s: %w", task.ID, err)
	}
	return nil
}
