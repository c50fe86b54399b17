package entity

import (
	"math"
	"time"
)

type SubmissionStatus string

const (
	SubmissionPendingScore SubmissionStatus = "Pending Score"
	SubmissionScored       SubmissionStatus = "Scored"
)

// ScoreBreakdown holds the five category marks, each 0-10.
type ScoreBreakdown struct {
	Depth         int `yaml:"depth" json:"depth" binding:"min=0,max=10"`
	Relevance     int `yaml:"relevance" json:"relevance" binding:"min=0,max=10"`
	Applicability int `yaml:"applicability" json:"applicability" binding:"min=0,max=10"`
	Novelty       int `yaml:"novelty" json:"novelty" binding:"min=0,max=10"`
	Packaging     int `yaml:"packaging" json:"packaging" binding:"min=0,max=10"`
}

// Aggregate scales the category sum to 0-100.
func (b ScoreBreakdown) Aggregate() int {
	sum := b.Depth + b.Relevance + b.Applicability + b.Novelty + b.Packaging
	return int(math.Round(float64(sum) / 50.0 * 100))
}

type Submission struct {
	ID           int              `yaml:"id" json:"id"`
	TaskID       int              `yaml:"taskId" json:"task_id"`
	TaskTitle    string           `yaml:"taskTitle" json:"task_title"`
	AssigneeID   int              `yaml:"assigneeId" json:"assignee_id"`
	AssigneeName string           `yaml:"assigneeName" json:"assignee_name"`
	SubmittedAt  time.Time        `yaml:"submittedAt" json:"submitted_at"`
	Status       SubmissionStatus `yaml:"status" json:"status"`
	FileURL      string           `yaml:"fileUrl" json:"file_url"`
	Scores       *ScoreBreakdown  `yaml:"scores,omitempty" json:"scores,omitempty"`
	Score        *int             `yaml:"score,omitempty" json:"score,omitempty"`
	Scorer       string           `yaml:"scorer,omitempty" json:"scorer,omitempty"`
}
