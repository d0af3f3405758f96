package services

import (
	"context"
	"errors"
	"os"

	"fastfood_backend/internal/auth"
	"fastfood_backend/internal/models"
	"fastfood_backend/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, name, email, phone string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtSecret  string
	adminEmail string
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret, adminEmail string) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		adminEmail: adminEmail,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, phone, password string) (*models.User, string, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	role := models.RoleCustomer
	if s.adminEmail != "" && email == s.adminEmail {
		role = models.RoleAdmin
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         string(role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, "", err
	}

	token, err := auth.CreateToken(user.ID, user.Email, user.Name, user.Role, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.CreateToken(user.ID, user.Email, user.Name, user.Role, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uint, name, email, phone string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			return ErrDuplicateEmail
		}
	}

	user.Name = name
	user.Email = email
	user.Phone = phone

	return s.userRepo.Update(ctx, user)
}
