package service

import (
	"context"
	"sort"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/modules/announcement/dto"
	"zeros.dev/launchpad/internal/modules/announcement/repository"
)

type AnnouncementService interface {
	// GetAllAnnouncements returns announcements newest-first.
	GetAllAnnouncements(ctx context.Context) ([]entity.Announcement, error)
	CreateAnnouncement(ctx context.Context, input dto.CreateAnnouncementInput, author string) (*entity.Announcement, error)
}

type announcementService struct {
	repo      repository.AnnouncementRepository
	sanitizer *bluemonday.Policy
}

func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *announcementService) GetAllAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	announcements, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(announcements, func(i, j int) bool {
		return announcements[i].Date.After(announcements[j].Date)
	})
	return announcements, nil
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, input dto.CreateAnnouncementInput, author string) (*entity.Announcement, error) {
	announcement := &entity.Announcement{
		Title:   s.sanitizer.Sanitize(input.Title),
		Content: s.sanitizer.Sanitize(input.Content),
		Date:    time.Now(),
		Author:  author,
	}

	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}
