package repository

import (
	"context"

	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/pkg/content"
)

const document = "announcements"

type AnnouncementRepository interface {
	FindAll(ctx context.Context) ([]entity.Announcement, error)
	Create(ctx context.Context, announcement *entity.Announcement) error
}

type announcementRepository struct {
	store *content.Store
}

func NewAnnouncementRepository(store *content.Store) AnnouncementRepository {
	return &announcementRepository{store: store}
}

func (r *announcementRepository) FindAll(ctx context.Context) ([]entity.Announcement, error) {
	return content.ReadList[entity.Announcement](r.store, document), nil
}

func (r *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	return content.Mutate(r.store, document, func(items []entity.Announcement) ([]entity.Announcement, error) {
		announcement.ID = 1
		for _, a := range items {
			if a.ID >= announcement.ID {
				announcement.ID = a.ID + 1
			}
		}
		return append(items, *announcement), nil
	})
}
