package service

import (
	"context"
	"fmt"
	"time"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/patrykJ113/edicom-api/config"
	"github.com/patrykJ113/edicom-api/internal/auth/domain"
	"github.com/patrykJ113/edicom-api/internal/auth/dto"
	"github.com/patrykJ113/edicom-api/internal/auth/validator"
	autherror "github.com/patrykJ113/edicom-api/internal/errors"
)

type UserService struct {
	repo               domain.UserRepository
	tokenService       TokenGenerator
	hasher             PasswordHasher
	validate           *gvalidator.Validate
	revealUnknownEmail bool
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, hasher PasswordHasher, cfg *config.Config) *UserService {
	if hasher == nil {
		hasher = NewBcryptHasher()
	}

	return &UserService{
		repo:               repo,
		tokenService:       tokenService,
		hasher:             hasher,
		validate:           validator.New(),
		revealUnknownEmail: cfg.LoginRevealUnknownEmail,
	}
}

// Register validates the input, rejects a taken email, stores the user and
// issues its first token pair. Nothing is written when validation or the
// uniqueness check fails.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.TokenPair, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrInvalidInputs, err)
	}

	existingUser, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueAndPersist(ctx, user)
}

// Login checks the password for email and rotates the user's token pair.
// Unknown email and wrong password fail identically unless the service is
// configured to reveal unknown accounts.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		if s.revealUnknownEmail {
			return nil, autherror.ErrAccountNotFound
		}
		return nil, autherror.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, autherror.ErrInvalidCredentials
	}

	return s.issueAndPersist(ctx, user)
}

// Refresh exchanges a refresh token for a new pair. The token must verify
// against the refresh secret and equal the one stored for its subject; any
// earlier token of the same user is rejected after rotation.
//
// Two concurrent calls presenting the same current token may both pass the
// lookup; the later UpdateRefreshToken wins.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenPair, error) {
	if input.RefreshToken == "" {
		return nil, autherror.ErrTokenInvalid
	}

	claims, err := s.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByIDAndRefreshToken(ctx, claims.Subject, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrRefreshTokenMismatch
	}

	return s.issueAndPersist(ctx, user)
}

// Verify accepts a valid access token as is and returns a nil pair. Otherwise
// it falls back to Refresh and returns the rotated pair.
func (s *UserService) Verify(ctx context.Context, input dto.VerifyInput) (*dto.TokenPair, error) {
	if input.AccessToken != "" {
		if _, err := s.tokenService.VerifyAccessToken(input.AccessToken); err == nil {
			return nil, nil
		}
	}

	return s.Refresh(ctx, dto.RefreshInput{RefreshToken: input.RefreshToken})
}

// issueAndPersist generates a pair and stores the refresh half as the user's
// only valid refresh token.
func (s *UserService) issueAndPersist(ctx context.Context, user *domain.User) (*dto.TokenPair, error) {
	pair, err := s.tokenService.Generate(user)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, err
	}
	user.RefreshToken = pair.RefreshToken

	return pair, nil
}

// RefreshTokenExpiry is the lifetime the refresh cookie must carry.
func (s *UserService) RefreshTokenExpiry() time.Duration {
	return s.tokenService.GetRefreshTokenExpiry()
}
