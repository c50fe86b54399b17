package entity

import "time"

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not Started"
	TaskInProgress TaskStatus = "In Progress"
	TaskSubmitted  TaskStatus = "Submitted"
	TaskScored     TaskStatus = "Scored"
	// TaskOverdue is derived on read, never written to the tasks document.
	TaskOverdue TaskStatus = "Overdue"
)

type Task struct {
	ID          int        `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Phase       string     `yaml:"phase" json:"phase"`
	Objective   string     `yaml:"objective" json:"objective"`
	Description string     `yaml:"description" json:"description"`
	ETA         time.Time  `yaml:"eta" json:"eta"`
	Status      TaskStatus `yaml:"status" json:"status"`
	AssigneeID  int        `yaml:"assigneeId" json:"assignee_id"`
	Score       *int       `yaml:"score,omitempty" json:"score,omitempty"`
}

// EffectiveStatus derives the status shown to callers. A task whose deadline
// has passed without a submission reads as Overdue; the stored status is
// untouched.
func (t Task) EffectiveStatus(now time.Time) TaskStatus {
	if (t.Status == TaskNotStarted || t.Status == TaskInProgress) && now.After(t.ETA) {
		return TaskOverdue
	}
	return t.Status
}
