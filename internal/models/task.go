// Package models contains data models for the todo API.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus is the closed set of task workflow states.
type TaskStatus string

const (
	StatusTodo   TaskStatus = "todo"
	StatusDoing  TaskStatus = "doing"
	StatusDone   TaskStatus = "done"
	StatusOnHold TaskStatus = "on hold"
)

// ParseTaskStatus converts a wire string to a TaskStatus.
// Any value outside the four defined states is rejected.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusTodo, StatusDoing, StatusDone, StatusOnHold:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("invalid task status: %q", s)
}

// Task represents a single item on a user's task list.
type Task struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Detail    string     `json:"detail" gorm:"type:text;not null"`
	Priority  int        `json:"priority" gorm:"not null;check:priority BETWEEN 1 AND 5"`
	Status    TaskStatus `json:"status" gorm:"type:varchar(16);not null;default:todo"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	User      User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName returns the database table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}

// BeforeCreate assigns a fresh UUID primary key.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// HumanizedTime renders the task's age the way the UI displays it.
func (t *Task) HumanizedTime(now time.Time) string {
	diff := now.Sub(t.CreatedAt)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour")
	case diff < 48*time.Hour:
		return "Yesterday"
	case diff < 7*24*time.Hour:
		return pluralize(int(diff.Hours()/24), "day")
	case diff < 4*7*24*time.Hour:
		return pluralize(int(diff.Hours()/(24*7)), "week")
	default:
		return t.CreatedAt.Format("Jan 02, 2006")
	}
}

func pluralize(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
