package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/notify"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/repository"
)

var (
	ErrUserNotFound     = errors.New("pengguna tidak ditemukan")
	ErrUsernameTaken    = errors.New("username sudah digunakan")
	ErrCardTaken        = errors.New("kartu sudah terpasang pada pengguna lain")
	ErrCannotModifySelf = errors.New("tidak dapat menonaktifkan akun sendiri")
)

// UserService covers the admin-facing user management the attendance system
// needs: registration, activation, and card assignment. General user CRUD is
// deliberately out of scope.
type UserService interface {
	// Register creates a user and notifies active admins.
	Register(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	// SetActive toggles is_active; callers can never deactivate themselves.
	SetActive(ctx context.Context, id, callerID string, isActive bool) (*dto.UserResponse, error)
	AssignCard(ctx context.Context, id, cardID string) (*dto.UserResponse, error)
	List(ctx context.Context, q *dto.UserListQuery) ([]dto.UserResponse, int64, error)
}

type userService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, notifier notify.Notifier, logger *zap.Logger) UserService {
	return &userService{repo: repo, notifier: notifier, logger: logger}
}

func (s *userService) Register(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("gagal meng-hash password", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		CardID:       req.CardID,
		IsActive:     true,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// username and card_id are the only unique columns here; look up
			// the username to tell which one collided.
			if _, lookupErr := s.repo.User.GetByUsername(ctx, req.Username); lookupErr == nil {
				return nil, ErrUsernameTaken
			}
			if req.CardID != nil {
				return nil, ErrCardTaken
			}
			return nil, ErrUsernameTaken
		}
		s.logger.Error("gagal menyimpan pengguna", zap.Error(err))
		return nil, err
	}

	s.notifier.Dispatch(ctx, []notify.Event{{
		Type:     model.NotifRegistration,
		Title:    "Pengguna baru terdaftar",
		Message:  fmt.Sprintf("%s terdaftar dengan peran %s", user.Name, user.Role),
		Audience: notify.Audience{Roles: []string{model.RoleAdmin}},
	}})

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) SetActive(ctx context.Context, id, callerID string, isActive bool) (*dto.UserResponse, error) {
	if !isActive && id == callerID {
		return nil, ErrCannotModifySelf
	}

	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("gagal mengambil pengguna", zap.Error(err))
		return nil, err
	}

	user.IsActive = isActive
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("gagal memperbarui pengguna", zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) AssignCard(ctx context.Context, id, cardID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("gagal mengambil pengguna", zap.Error(err))
		return nil, err
	}

	user.CardID = &cardID
	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCardTaken
		}
		s.logger.Error("gagal memperbarui pengguna", zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, q *dto.UserListQuery) ([]dto.UserResponse, int64, error) {
	users, total, err := s.repo.User.List(ctx, q.Role, q.Offset(), q.PageSize)
	if err != nil {
		s.logger.Error("gagal mengambil daftar pengguna", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, total, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.UserID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		CardID:   user.CardID,
		IsActive: user.IsActive,
	}
}
