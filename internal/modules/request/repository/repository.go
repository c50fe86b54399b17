package repository

import (
	"context"

	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/pkg/apperror"
	"zeros.dev/launchpad/pkg/content"
)

const document = "requests"

type RequestRepository interface {
	FindAll(ctx context.Context) ([]entity.AccessRequest, error)
	FindByID(ctx context.Context, id int) (*entity.AccessRequest, error)
	Create(ctx context.Context, request *entity.AccessRequest) error
	Update(ctx context.Context, request entity.AccessRequest) error
}

type requestRepository struct {
	store *content.Store
}

func NewRequestRepository(store *content.Store) RequestRepository {
	return &requestRepository{store: store}
}

func (r *requestRepository) FindAll(ctx context.Context) ([]entity.AccessRequest, error) {
	return content.ReadList[entity.AccessRequest](r.store, document), nil
}

func (r *requestRepository) FindByID(ctx context.Context, id int) (*entity.AccessRequest, error) {
	for _, req := range content.ReadList[entity.AccessRequest](r.store, document) {
		if req.ID == id {
			return &req, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (r *requestRepository) Create(ctx context.Context, request *entity.AccessRequest) error {
	return content.Mutate(r.store, document, func(items []entity.AccessRequest) ([]entity.AccessRequest, error) {
		request.ID = 1
		for _, req := range items {
			if req.ID >= request.ID {
				request.ID = req.ID + 1
			}
		}
		return append(items, *request), nil
	})
}

func (r *requestRepository) Update(ctx context.Context, request entity.AccessRequest) error {
	return content.Mutate(r.store, document, func(items []entity.AccessRequest) ([]entity.AccessRequest, error) {
		for i := range items {
			if items[i].ID == request.ID {
				items[i] = request
				return items, nil
			}
		}
		return nil, apperror.ErrNotFound
	})
}
