package dto

import (
	"time"

	"zeros.dev/launchpad/internal/entity"
)

type CreateTaskInput struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Phase       string    `json:"phase" binding:"required"`
	Objective   string    `json:"objective" binding:"required"`
	Description string    `json:"description"`
	ETA         time.Time `json:"eta" binding:"required"`
	AssigneeID  int       `json:"assignee_id" binding:"required"`
	Status      string    `json:"status"`
}

type UpdateTaskInput struct {
	Title       string     `json:"title"`
	Phase       string     `json:"phase"`
	Objective   string     `json:"objective"`
	Description string     `json:"description"`
	ETA         *time.Time `json:"eta"`
	AssigneeID  *int       `json:"assignee_id"`
	Status      string     `json:"status"`
}

// TaskResponse carries the derived status alongside the stored record and the
// submission count computed at read time.
type TaskResponse struct {
	entity.Task
	EffectiveStatus entity.TaskStatus `json:"effective_status"`
	SubmissionCount int               `json:"submission_count"`
}
