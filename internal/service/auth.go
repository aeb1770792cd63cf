package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/inkpost/backend/internal/apperror"
	"github.com/inkpost/backend/internal/db"
	"github.com/inkpost/backend/internal/model"
)

// userStore is the slice of the account repository the auth service
// depends on.
type userStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// AuthService orchestrates registration and login over the credential
// hasher and the token service.
type AuthService struct {
	store  userStore
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(store userStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{store: store, hasher: hasher, tokens: tokens}
}

// Register creates a new account. Username and email must both be
// unused; the check-then-insert sequence is not locked, so a
// concurrent duplicate surfaces as a unique violation and is reported
// the same way as the pre-check.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error) {
	exists, err := s.store.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("uniqueness check failed")
		return nil, apperror.NewDatabaseError("failed to check user existence", err)
	}
	if exists {
		return nil, apperror.NewValidationError("username or email already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apperror.NewValidationError("username or email already exists")
		}
		log.Error().Err(err).Msg("user insert failed")
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	resp := user.Response()
	return &resp, nil
}

// Login authenticates by username and password and issues a token. An
// unknown username and a wrong password fail identically so the
// response never reveals which one was at fault.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperror.NewUnauthorizedError("invalid username or password")
		}
		log.Error().Err(err).Msg("user lookup failed")
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperror.NewUnauthorizedError("invalid username or password")
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token: token,
		User:  user.Response(),
	}, nil
}

// CurrentUser resolves an authenticated id to its sanitized view.
func (s *AuthService) CurrentUser(ctx context.Context, id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperror.NewNotFoundError("user not found")
		}
		log.Error().Err(err).Msg("user lookup failed")
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	resp := user.Response()
	return &resp, nil
}
