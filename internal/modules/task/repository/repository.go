package repository

import (
	"context"

	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/pkg/apperror"
	"zeros.dev/launchpad/pkg/content"
)

const document = "tasks"

// firstTaskID seeds the tasks list; other lists start at 1.
const firstTaskID = 101

type TaskRepository interface {
	FindAll(ctx context.Context) ([]entity.Task, error)
	FindByID(ctx context.Context, id int) (*entity.Task, error)
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task entity.Task) error
	Delete(ctx context.Context, id int) error
}

type taskRepository struct {
	store *content.Store
}

func NewTaskRepository(store *content.Store) TaskRepository {
	return &taskRepository{store: store}
}

func (r *taskRepository) FindAll(ctx context.Context) ([]entity.Task, error) {
	return content.ReadList[entity.Task](r.store, document), nil
}

func (r *taskRepository) FindByID(ctx context.Context, id int) (*entity.Task, error) {
	for _, t := range content.ReadList[entity.Task](r.store, document) {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	return content.Mutate(r.store, document, func(tasks []entity.Task) ([]entity.Task, error) {
		task.ID = firstTaskID
		for _, t := range tasks {
			if t.ID >= task.ID {
				task.ID = t.ID + 1
			}
		}
		return append(tasks, *task), nil
	})
}

func (r *taskRepository) Update(ctx context.Context, task entity.Task) error {
	return content.Mutate(r.store, document, func(tasks []entity.Task) ([]entity.Task, error) {
		for i := range tasks {
			if tasks[i].ID == task.ID {
				tasks[i] = task
				return tasks, nil
			}
		}
		return nil, apperror.ErrNotFound
	})
}

func (r *taskRepository) Delete(ctx context.Context, id int) error {
	return content.Mutate(r.store, document, func(tasks []entity.Task) ([]entity.Task, error) {
		for i := range tasks {
			if tasks[i].ID == id {
				return append(tasks[:i], tasks[i+1:]...), nil
			}
		}
		return nil, apperror.ErrNotFound
	})
}
