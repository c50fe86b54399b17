package service

import (
	"context"
	"fmt"
	"time"

	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/modules/task/dto"
	"zeros.dev/launchpad/internal/modules/task/repository"
	userRepo "zeros.dev/launchpad/internal/modules/user/repository"
	"zeros.dev/launchpad/pkg/apperror"
)

// SubmissionCounter reports how many submissions exist per task. Implemented
// by the submission repository; declared here to avoid a module cycle.
type SubmissionCounter interface {
	CountByTask(ctx context.Context) (map[int]int, error)
}

type TaskService interface {
	GetAllTasks(ctx context.Context) ([]dto.TaskResponse, error)
	GetTaskByID(ctx context.Context, id int) (*dto.TaskResponse, error)
	CreateTask(ctx context.Context, input dto.CreateTaskInput) (*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, id int, input dto.UpdateTaskInput) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, id int) error
}

type taskService struct {
	repo        repository.TaskRepository
	users       userRepo.UserRepository
	submissions SubmissionCounter
	now         func() time.Time
}

func NewTaskService(repo repository.TaskRepository, users userRepo.UserRepository, submissions SubmissionCounter) TaskService {
	return &taskService{
		repo:        repo,
		users:       users,
		submissions: submissions,
		now:         time.Now,
	}
}

func (s *taskService) GetAllTasks(ctx context.Context) ([]dto.TaskResponse, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[int]int{}
	if s.submissions != nil {
		if c, err := s.submissions.CountByTask(ctx); err == nil {
			counts = c
		}
	}

	now := s.now()
	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, dto.TaskResponse{
			Task:            t,
			EffectiveStatus: t.EffectiveStatus(now),
			SubmissionCount: counts[t.ID],
		})
	}
	return responses, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, id int) (*dto.TaskResponse, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, *task), nil
}

func (s *taskService) CreateTask(ctx context.Context, input dto.CreateTaskInput) (*dto.TaskResponse, error) {
	if _, err := s.users.FindByID(ctx, input.AssigneeID); err != nil {
		return nil, fmt.Errorf("%w: assignee not found", apperror.ErrInvalidInput)
	}

	status := entity.TaskNotStarted
	if input.Status != "" {
		st, err := storableStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}

	task := &entity.Task{
		Title:       input.Title,
		Phase:       input.Phase,
		Objective:   input.Objective,
		Description: input.Description,
		ETA:         input.ETA,
		Status:      status,
		AssigneeID:  input.AssigneeID,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return s.respond(ctx, *task), nil
}

func (s *taskService) UpdateTask(ctx context.Context, id int, input dto.UpdateTaskInput) (*dto.TaskResponse, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		task.Title = input.Title
	}
	if input.Phase != "" {
		task.Phase = input.Phase
	}
	if input.Objective != "" {
		task.Objective = input.Objective
	}
	if input.Description != "" {
		task.Description = input.Description
	}
	if input.ETA != nil {
		task.ETA = *input.ETA
	}
	if input.AssigneeID != nil {
		if _, err := s.users.FindByID(ctx, *input.AssigneeID); err != nil {
			return nil, fmt.Errorf("%w: assignee not found", apperror.ErrInvalidInput)
		}
		task.AssigneeID = *input.AssigneeID
	}
	if input.Status != "" {
		st, err := storableStatus(input.Status)
		if err != nil {
			return nil, err
		}
		task.Status = st
	}

	if err := s.repo.Update(ctx, *task); err != nil {
		return nil, err
	}
	return s.respond(ctx, *task), nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *taskService) respond(ctx context.Context, task entity.Task) *dto.TaskResponse {
	count := 0
	if s.submissions != nil {
		if counts, err := s.submissions.CountByTask(ctx); err == nil {
			count = counts[task.ID]
		}
	}
	return &dto.TaskResponse{
		Task:            task,
		EffectiveStatus: task.EffectiveStatus(s.now()),
		SubmissionCount: count,
	}
}

// storableStatus accepts only statuses that may be persisted; Overdue is
// derived on read and rejected here.
func storableStatus(s string) (entity.TaskStatus, error) {
	switch st := entity.TaskStatus(s); st {
	case entity.TaskNotStarted, entity.TaskInProgress, entity.TaskSubmitted, entity.TaskScored:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown task status %s", apperror.ErrInvalidInput, s)
	}
}
