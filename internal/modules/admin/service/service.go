package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/modules/admin/dto"
	"zeros.dev/launchpad/internal/modules/user/repository"
	"zeros.dev/launchpad/pkg/apperror"
	"zeros.dev/launchpad/pkg/storage"
)

type AdminService interface {
	CreateUser(ctx context.Context, input dto.CreateUserInput, avatar *dto.AvatarFile) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]entity.User, error)
	UpdateUser(ctx context.Context, id int, input dto.UpdateUserInput, avatar *dto.AvatarFile) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id int) error
}

type adminService struct {
	repo        repository.UserRepository
	fileStorage storage.FileStorage
}

func NewAdminService(repo repository.UserRepository, fileStorage storage.FileStorage) AdminService {
	return &adminService{
		repo:        repo,
		fileStorage: fileStorage,
	}
}

func (s *adminService) CreateUser(ctx context.Context, input dto.CreateUserInput, avatar *dto.AvatarFile) (*dto.UserResponse, error) {
	if !entity.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %s", apperror.ErrInvalidInput, input.Role)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperror.ErrConflict)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	avatarURL := "/avatars/1.png"
	if avatar != nil && avatar.Reader != nil && s.fileStorage != nil {
		url, err := s.fileStorage.UploadFile(ctx, avatar.Reader, "avatars", avatar.FileName)
		if err != nil {
			return nil, err
		}
		avatarURL = url
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		Role:         entity.Role(input.Role),
		Avatar:       avatarURL,
		PasswordHash: string(hashed),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &dto.UserResponse{User: user}, nil
}

func (s *adminService) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *adminService) UpdateUser(ctx context.Context, id int, input dto.UpdateUserInput, avatar *dto.AvatarFile) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}

	if input.Email != "" && !user.EmailEquals(input.Email) {
		if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
			return nil, fmt.Errorf("%w: email already registered", apperror.ErrConflict)
		} else if !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		user.Email = input.Email
	}

	if input.Role != "" {
		if !entity.ValidRole(input.Role) {
			return nil, fmt.Errorf("%w: unknown role %s", apperror.ErrInvalidInput, input.Role)
		}
		user.Role = entity.Role(input.Role)
	}

	if avatar != nil && avatar.Reader != nil && s.fileStorage != nil {
		url, err := s.fileStorage.UploadFile(ctx, avatar.Reader, "avatars", avatar.FileName)
		if err != nil {
			return nil, err
		}
		user.Avatar = url
	}

	if err := s.repo.Update(ctx, *user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &dto.UserResponse{User: user}, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
