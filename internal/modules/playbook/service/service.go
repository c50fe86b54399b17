package service

import (
	"context"

	"zeros.dev/launchpad/pkg/content"
)

const document = "playbook"

type PlaybookService interface {
	GetSections(ctx context.Context) ([]content.Section, error)
}

type playbookService struct {
	store *content.Store
}

func NewPlaybookService(store *content.Store) PlaybookService {
	return &playbookService{store: store}
}

func (s *playbookService) GetSections(ctx context.Context) ([]content.Section, error) {
	return s.store.Sections(document)
}
