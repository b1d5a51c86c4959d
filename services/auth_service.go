package services

import (
	"context"
	"errors"
	"net/http"

	apperrors "furnishop/errors"
	"furnishop/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ITokenService interface {
	Generate(userID, email, role string) (string, error)
}

// AuthService handles registration, login and account management.
type AuthService struct {
	userRepo     IUserRepository
	tokenService ITokenService
}

func NewAuthService(ur IUserRepository, ts ITokenService) *AuthService {
	return &AuthService{userRepo: ur, tokenService: ts}
}

// Register creates a user account and returns a session token. The
// password/confirmation check happens before any storage access.
func (s *AuthService) Register(ctx context.Context, name, email, password, confirmPassword string) (string, *models.User, error) {
	if password != confirmPassword {
		return "", nil, apperrors.New(http.StatusBadRequest, "Passwords do not match", nil)
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return "", nil, apperrors.New(http.StatusConflict, "Email already exists", nil)
	}
	if err != gorm.ErrRecordNotFound {
		return "", nil, apperrors.New(http.StatusInternalServerError, "Failed to create account", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, apperrors.New(http.StatusInternalServerError, "Failed to hash password", err)
	}

	user := &models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can win the race between the email
		// lookup and the insert; the unique constraint is the backstop.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, apperrors.New(http.StatusConflict, "Email already exists", err)
		}
		return "", nil, apperrors.New(http.StatusInternalServerError, "Failed to create account", err)
	}

	token, err := s.tokenService.Generate(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return "", nil, apperrors.New(http.StatusInternalServerError, "Failed to generate token", err)
	}
	return token, user, nil
}

// Login verifies credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.New(http.StatusUnauthorized, "Invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.New(http.StatusUnauthorized, "Invalid email or password", nil)
	}

	token, err := s.tokenService.Generate(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return "", nil, apperrors.New(http.StatusInternalServerError, "Failed to generate token", err)
	}
	return token, user, nil
}

// Profile returns the account for id.
func (s *AuthService) Profile(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.New(http.StatusNotFound, "User not found", err)
	}
	return user, nil
}

// ListUsers returns all accounts.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to fetch users", err)
	}
	return users, nil
}

// DeleteUser removes an account. Admin accounts cannot be deleted.
func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return apperrors.New(http.StatusNotFound, "User not found", err)
	}
	if user.Role == models.RoleAdmin {
		return apperrors.New(http.StatusForbidden, "Cannot delete an admin account", nil)
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return apperrors.New(http.StatusInternalServerError, "Failed to delete user", err)
	}
	return nil
}
