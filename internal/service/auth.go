package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/logger"
	"bookshelf-backend/internal/repository"
	"bookshelf-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken        = errors.New("an account with this email already exists")
	ErrBadCredentials    = errors.New("invalid email or password")
	ErrAccountNotEnabled = errors.New("account is not activated")
	ErrInvalidActivation = errors.New("invalid activation token")
	ErrActivationExpired = errors.New("activation token has expired, a new token has been sent to the same email address")
)

type authService struct {
	userRepo      repository.UserRepository
	tokenRepo     repository.TokenRepository
	emailSvc      EmailService
	tokens        security.TokenManager
	activationURL string
	tokenTTL      time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	emailSvc EmailService,
	tokens security.TokenManager,
	activationURL string,
	tokenTTLMinutes int,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		emailSvc:      emailSvc,
		tokens:        tokens,
		activationURL: activationURL,
		tokenTTL:      time.Duration(tokenTTLMinutes) * time.Minute,
	}
}

func (s *authService) Register(ctx context.Context, email, password, firstName, lastName string) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Roles:        []string{domain.RoleUser},
		Enabled:      false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	return s.sendActivationToken(ctx, user)
}

func (s *authService) ActivateAccount(ctx context.Context, token string) error {
	saved, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if saved == nil {
		return ErrInvalidActivation
	}
	if saved.Expired(time.Now()) {
		// Issue a fresh token so the user can retry without re-registering.
		user, err := s.userRepo.GetByID(ctx, saved.UserID)
		if err != nil {
			return err
		}
		if err := s.sendActivationToken(ctx, user); err != nil {
			logger.Error("failed to resend activation token", "user_id", saved.UserID, "error", err)
		}
		return ErrActivationExpired
	}

	if err := s.userRepo.Enable(ctx, saved.UserID); err != nil {
		return err
	}
	if err := s.tokenRepo.MarkValidated(ctx, saved.ID); err != nil {
		return err
	}
	logger.Info("account activated", "user_id", saved.UserID)
	return nil
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrBadCredentials
	}
	if !user.Enabled {
		return "", ErrAccountNotEnabled
	}
	return s.tokens.GenerateAccessToken(user.ID, user.Email, user.Roles)
}

func (s *authService) sendActivationToken(ctx context.Context, user *domain.User) error {
	token := &domain.Token{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresOn: time.Now().Add(s.tokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return err
	}
	// Mail delivery happens outside any transactional boundary; a failure
	// here leaves the token usable once delivery recovers.
	return s.emailSvc.SendActivationEmail(ctx, user.Email, user.FullName(), s.activationURL, token.Token)
}
