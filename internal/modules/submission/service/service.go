package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/modules/submission/dto"
	"zeros.dev/launchpad/internal/modules/submission/repository"
	taskRepo "zeros.dev/launchpad/internal/modules/task/repository"
	"zeros.dev/launchpad/pkg/apperror"
	"zeros.dev/launchpad/pkg/storage"
)

const uploadFolder = "uploads"

type SubmissionService interface {
	GetAllSubmissions(ctx context.Context) ([]entity.Submission, error)
	// Submit stores the deliverable and upserts the (task, assignee)
	// submission, then flips the task to Submitted. Re-submitting replaces
	// the stored file and resets the record to Pending Score, even when it
	// was already Scored.
	Submit(ctx context.Context, taskID int, assignee *entity.User, file *dto.UploadFile) (*entity.Submission, error)
	// Score records a breakdown on the submission and propagates the
	// aggregate onto the owning task.
	Score(ctx context.Context, submissionID int, breakdown entity.ScoreBreakdown, scorerName string) (*entity.Submission, error)
}

type submissionService struct {
	repo        repository.SubmissionRepository
	tasks       taskRepo.TaskRepository
	fileStorage storage.FileStorage
	now         func() time.Time
}

func NewSubmissionService(repo repository.SubmissionRepository, tasks taskRepo.TaskRepository, fileStorage storage.FileStorage) SubmissionService {
	return &submissionService{
		repo:        repo,
		tasks:       tasks,
		fileStorage: fileStorage,
		now:         time.Now,
	}
}

func (s *submissionService) GetAllSubmissions(ctx context.Context) ([]entity.Submission, error) {
	return s.repo.FindAll(ctx)
}

func (s *submissionService) Submit(ctx context.Context, taskID int, assignee *entity.User, file *dto.UploadFile) (*entity.Submission, error) {
	if file == nil || file.Reader == nil || file.Size == 0 {
		return nil, fmt.Errorf("%w: no file provided", apperror.ErrInvalidInput)
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w: task not found", apperror.ErrNotFound)
	}

	// The file lands in durable storage before any document changes; a
	// failed document write leaves an orphaned upload, not a corrupt list.
	fileURL, err := s.fileStorage.UploadFile(ctx, file.Reader, uploadFolder, file.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	var result *entity.Submission

	existing, err := s.repo.FindByTaskAssignee(ctx, taskID, assignee.ID)
	if err == nil {
		if old := existing.FileURL; old != "" && strings.HasPrefix(old, "/"+uploadFolder+"/") {
			if err := s.fileStorage.DeleteFile(ctx, old); err != nil {
				log.Printf("submission: could not delete old file %s: %v", old, err)
			}
		}

		existing.SubmittedAt = s.now()
		existing.Status = entity.SubmissionPendingScore
		existing.FileURL = fileURL
		existing.Scores = nil
		existing.Score = nil
		existing.Scorer = ""

		if err := s.repo.Update(ctx, *existing); err != nil {
			return nil, err
		}
		result = existing
	} else {
		submission := &entity.Submission{
			TaskID:       taskID,
			TaskTitle:    task.Title,
			AssigneeID:   assignee.ID,
			AssigneeName: assignee.Name,
			SubmittedAt:  s.now(),
			Status:       entity.SubmissionPendingScore,
			FileURL:      fileURL,
		}
		if err := s.repo.Create(ctx, submission); err != nil {
			return nil, err
		}
		result = submission
	}

	if task.Status != entity.TaskSubmitted {
		task.Status = entity.TaskSubmitted
		if err := s.tasks.Update(ctx, *task); err != nil {
			// The submission document already changed; surface the failure
			// instead of hiding the partial state.
			return nil, fmt.Errorf("submission recorded but task update failed: %w", err)
		}
	}

	return result, nil
}

func (s *submissionService) Score(ctx context.Context, submissionID int, breakdown entity.ScoreBreakdown, scorerName string) (*entity.Submission, error) {
	submission, err := s.repo.FindByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	aggregate := breakdown.Aggregate()

	submission.Status = entity.SubmissionScored
	submission.Scores = &breakdown
	submission.Score = &aggregate
	submission.Scorer = scorerName

	if err := s.repo.Update(ctx, *submission); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, submission.TaskID)
	if err != nil {
		return nil, fmt.Errorf("submission scored but task lookup failed: %w", err)
	}

	task.Status = entity.TaskScored
	task.Score = &aggregate
	if err := s.tasks.Update(ctx, *task); err != nil {
		return nil, fmt.Errorf("submission scored but task update failed: %w", err)
	}

	return submission, nil
}
