package repository

import (
	"context"

	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/pkg/apperror"
	"zeros.dev/launchpad/pkg/content"
)

const document = "submissions"

type SubmissionRepository interface {
	FindAll(ctx context.Context) ([]entity.Submission, error)
	FindByID(ctx context.Context, id int) (*entity.Submission, error)
	// FindByTaskAssignee locates the active submission for a (task, assignee)
	// pair. At most one exists.
	FindByTaskAssignee(ctx context.Context, taskID, assigneeID int) (*entity.Submission, error)
	Create(ctx context.Context, submission *entity.Submission) error
	Update(ctx context.Context, submission entity.Submission) error
	Delete(ctx context.Context, id int) error
	CountByTask(ctx context.Context) (map[int]int, error)
}

type submissionRepository struct {
	store *content.Store
}

func NewSubmissionRepository(store *content.Store) SubmissionRepository {
	return &submissionRepository{store: store}
}

func (r *submissionRepository) FindAll(ctx context.Context) ([]entity.Submission, error) {
	return content.ReadList[entity.Submission](r.store, document), nil
}

func (r *submissionRepository) FindByID(ctx context.Context, id int) (*entity.Submission, error) {
	for _, s := range content.ReadList[entity.Submission](r.store, document) {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (r *submissionRepository) FindByTaskAssignee(ctx context.Context, taskID, assigneeID int) (*entity.Submission, error) {
	for _, s := range content.ReadList[entity.Submission](r.store, document) {
		if s.TaskID == taskID && s.AssigneeID == assigneeID {
			return &s, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (r *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	return content.Mutate(r.store, document, func(items []entity.Submission) ([]entity.Submission, error) {
		submission.ID = 1
		for _, s := range items {
			if s.ID >= submission.ID {
				submission.ID = s.ID + 1
			}
		}
		return append(items, *submission), nil
	})
}

func (r *submissionRepository) Update(ctx context.Context, submission entity.Submission) error {
	return content.Mutate(r.store, document, func(items []entity.Submission) ([]entity.Submission, error) {
		for i := range items {
			if items[i].ID == submission.ID {
				items[i] = submission
				return items, nil
			}
		}
		return nil, apperror.ErrNotFound
	})
}

func (r *submissionRepository) Delete(ctx context.Context, id int) error {
	return content.Mutate(r.store, document, func(items []entity.Submission) ([]entity.Submission, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, apperror.ErrNotFound
	})
}

func (r *submissionRepository) CountByTask(ctx context.Context) (map[int]int, error) {
	counts := make(map[int]int)
	for _, s := range content.ReadList[entity.Submission](r.store, document) {
		counts[s.TaskID]++
	}
	return counts, nil
}
