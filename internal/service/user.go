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

type userAdminStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context, offset, limit int) ([]model.User, int64, error)
}

// UserService serves the user resource endpoints.
type UserService struct {
	store userAdminStore
}

func NewUserService(store userAdminStore) *UserService {
	return &UserService{store: store}
}

// List returns one page of accounts ordered by creation time
// descending.
func (s *UserService) List(ctx context.Context, p model.Pagination) (*model.PagedResult[model.UserResponse], error) {
	users, total, err := s.store.ListUsers(ctx, p.Offset(), p.Limit())
	if err != nil {
		log.Error().Err(err).Msg("user list query failed")
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}

	list := make([]model.UserResponse, 0, len(users))
	for i := range users {
		list = append(list, users[i].Response())
	}

	return &model.PagedResult[model.UserResponse]{
		List:       list,
		Pagination: model.NewPageInfo(p, total),
	}, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.UserResponse, error) {
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

// Update modifies an account. Accounts can only be modified by their
// owner.
func (s *UserService) Update(ctx context.Context, actor model.AuthUser, id uuid.UUID, req model.UpdateUserRequest) (*model.UserResponse, error) {
	if actor.ID != id {
		return nil, apperror.NewForbiddenError("cannot modify another user's account")
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperror.NewNotFoundError("user not found")
		}
		log.Error().Err(err).Msg("user lookup failed")
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	user.UpdatedAt = time.Now()

	if err := s.store.UpdateUser(ctx, user); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apperror.NewValidationError("username or email already exists")
		}
		if db.IsNoRows(err) {
			return nil, apperror.NewNotFoundError("user not found")
		}
		log.Error().Err(err).Msg("user update failed")
		return nil, apperror.NewDatabaseError("failed to update user", err)
	}

	resp := user.Response()
	return &resp, nil
}

// Delete removes an account. Accounts can only be deleted by their
// owner.
func (s *UserService) Delete(ctx context.Context, actor model.AuthUser, id uuid.UUID) error {
	if actor.ID != id {
		return apperror.NewForbiddenError("cannot delete another user's account")
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return apperror.NewNotFoundError("user not found")
		}
		log.Error().Err(err).Msg("user delete failed")
		return apperror.NewDatabaseError("failed to delete user", err)
	}
	return nil
}
