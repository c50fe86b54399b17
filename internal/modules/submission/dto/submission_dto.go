package dto

import (
	"io"

	"zeros.dev/launchpad/internal/entity"
)

// UploadFile is the deliverable attached to a submission.
type UploadFile struct {
	Reader   io.Reader
	FileName string
	Size     int64
}

type SubmitInput struct {
	TaskID int `form:"task_id" binding:"required"`
}

type ScoreInput struct {
	Scores entity.ScoreBreakdown `json:"scores" binding:"required"`
}

type SubmissionResponse struct {
	Submission *entity.Submission `json:"submission"`
}
