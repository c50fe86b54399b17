package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/modules/request/dto"
	"zeros.dev/launchpad/internal/modules/request/repository"
	userRepo "zeros.dev/launchpad/internal/modules/user/repository"
	"zeros.dev/launchpad/pkg/apperror"
)

type RequestService interface {
	GetAllRequests(ctx context.Context) ([]entity.AccessRequest, error)
	Create(ctx context.Context, input dto.CreateRequestInput) (*entity.AccessRequest, error)
	// Approve transitions a Pending request and provisions an Apprentice
	// account with the default password, unless the email already has one.
	Approve(ctx context.Context, id int) (*entity.AccessRequest, error)
	Reject(ctx context.Context, id int) (*entity.AccessRequest, error)
}

type requestService struct {
	repo            repository.RequestRepository
	users           userRepo.UserRepository
	defaultPassword string
	now             func() time.Time
}

func NewRequestService(repo repository.RequestRepository, users userRepo.UserRepository, defaultPassword string) RequestService {
	return &requestService{
		repo:            repo,
		users:           users,
		defaultPassword: defaultPassword,
		now:             time.Now,
	}
}

func (s *requestService) GetAllRequests(ctx context.Context) ([]entity.AccessRequest, error) {
	return s.repo.FindAll(ctx)
}

func (s *requestService) Create(ctx context.Context, input dto.CreateRequestInput) (*entity.AccessRequest, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range requests {
		if r.Status == entity.RequestPending && strings.EqualFold(r.UserEmail, input.Email) {
			return nil, fmt.Errorf("%w: an access request for this email is already pending", apperror.ErrConflict)
		}
	}

	request := &entity.AccessRequest{
		UserName:    input.FullName,
		UserEmail:   input.Email,
		UserRole:    input.Role,
		RequestedAt: s.now(),
		Status:      entity.RequestPending,
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *requestService) Approve(ctx context.Context, id int) (*entity.AccessRequest, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Status != entity.RequestPending {
		return nil, fmt.Errorf("%w: this request has already been processed", apperror.ErrConflict)
	}

	request.Status = entity.RequestApproved
	if err := s.repo.Update(ctx, *request); err != nil {
		return nil, err
	}

	// Provisioning is skipped silently when the account already exists,
	// e.g. one added by hand before approval.
	if _, err := s.users.FindByEmail(ctx, request.UserEmail); err == nil {
		return request, nil
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("request approved but user lookup failed: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("request approved but password hash failed: %w", err)
	}

	existing, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         request.UserName,
		Email:        request.UserEmail,
		Role:         entity.RoleApprentice,
		Avatar:       fmt.Sprintf("/avatars/%d.png", (len(existing)%5)+1),
		PasswordHash: string(hashed),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("request approved but user provisioning failed: %w", err)
	}

	log.Printf("request: provisioned apprentice account for %s", request.UserEmail)
	return request, nil
}

func (s *requestService) Reject(ctx context.Context, id int) (*entity.AccessRequest, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Status != entity.RequestPending {
		return nil, fmt.Errorf("%w: this request has already been processed", apperror.ErrConflict)
	}

	request.Status = entity.RequestRejected
	if err := s.repo.Update(ctx, *request); err != nil {
		return nil, err
	}
	return request, nil
}
