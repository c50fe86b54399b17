package repository

import (
	"context"

	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/pkg/apperror"
	"zeros.dev/launchpad/pkg/content"
)

const document = "users"

type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id int) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user entity.User) error
	Delete(ctx context.Context, id int) error
}

type userRepository struct {
	store *content.Store
}

func NewUserRepository(store *content.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	return content.ReadList[entity.User](r.store, document), nil
}

func (r *userRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	for _, u := range content.ReadList[entity.User](r.store, document) {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range content.ReadList[entity.User](r.store, document) {
		if u.EmailEquals(email) {
			return &u, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return content.Mutate(r.store, document, func(users []entity.User) ([]entity.User, error) {
		user.ID = 1
		for _, u := range users {
			if u.ID >= user.ID {
				user.ID = u.ID + 1
			}
		}
		return append(users, *user), nil
	})
}

func (r *userRepository) Update(ctx context.Context, user entity.User) error {
	return content.Mutate(r.store, document, func(users []entity.User) ([]entity.User, error) {
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = user
				return users, nil
			}
		}
		return nil, apperror.ErrNotFound
	})
}

func (r *userRepository) Delete(ctx context.Context, id int) error {
	return content.Mutate(r.store, document, func(users []entity.User) ([]entity.User, error) {
		for i := range users {
			if users[i].ID == id {
				// Orchestrator accounts cannot be removed.
				if users[i].Role == entity.RoleOrchestrator {
					return nil, apperror.ErrForbidden
				}
				return append(users[:i], users[i+1:]...), nil
			}
		}
		return nil, apperror.ErrNotFound
	})
}
