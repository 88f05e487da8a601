package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"cartly-be/internal/apperrors"
	"cartly-be/internal/jwt"
	"cartly-be/internal/models"
	"cartly-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(req *models.SignupRequest) (*models.AuthResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	Profile(userID string) (*models.UserProfile, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup creates a new user account and logs it in.
func (s *authService) Signup(req *models.SignupRequest) (*models.AuthResponse, error) {
	// Lowercasing here plus the unique index makes email uniqueness
	// case-insensitive.
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Persistence("failed to hash password", err)
	}

	user, err := s.userRepo.Create(email, string(hashedPassword))
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.Persistence("failed to generate token", err)
	}

	return &models.AuthResponse{
		Token: token,
		User: models.UserProfile{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Login authenticates a user and returns a fresh token. Unknown email and
// wrong password produce the same error so callers cannot tell them apart.
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			return nil, apperrors.Auth("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Auth("invalid credentials")
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.Persistence("failed to generate token", err)
	}

	return &models.AuthResponse{
		Token: token,
		User: models.UserProfile{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Profile returns the authenticated user's public profile.
func (s *authService) Profile(userID string) (*models.UserProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
