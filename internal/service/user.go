package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/elisoft-engineer/todo-api/internal/models"
	"github.com/elisoft-engineer/todo-api/internal/repository"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("a user with this email already exists")
	ErrWrongPassword = errors.New("wrong password")
)

// UserService defines user account operations.
type UserService interface {
	Register(ctx context.Context, email, firstName, lastName, password string) (*models.User, error)
	List(ctx context.Context, active *bool) ([]models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, user *models.User, email, firstName, lastName string) error
	ToggleActive(ctx context.Context, user *models.User) (bool, error)
	Delete(ctx context.Context, user *models.User) error
	ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, email, firstName, lastName, password string) (*models.User, error) {
	taken, err := s.userRepo.EmailTaken(ctx, email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, active *bool) ([]models.User, error) {
	return s.userRepo.List(ctx, active)
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, user *models.User, email, firstName, lastName string) error {
	// Uniqueness is rechecked against every row but the user's own.
	taken, err := s.userRepo.EmailTaken(ctx, email, user.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	user.Email = email
	user.FirstName = firstName
	user.LastName = lastName
	return s.userRepo.Update(ctx, user)
}

func (s *userService) ToggleActive(ctx context.Context, user *models.User) (bool, error) {
	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return false, err
	}
	return user.IsActive, nil
}

func (s *userService) Delete(ctx context.Context, user *models.User) error {
	return s.userRepo.Delete(ctx, user)
}

func (s *userService) ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	return s.userRepo.Update(ctx, user)
}
