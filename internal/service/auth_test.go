package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkpost/backend/internal/apperror"
	"github.com/inkpost/backend/internal/model"
)

// fakeUserStore is an in-memory userStore keyed by username.
type fakeUserStore struct {
	users     map[string]*model.User
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newTestAuthService(store userStore) *AuthService {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := testTokenService(7)
	return NewAuthService(store, hasher, tokens)
}

func TestRegister(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	resp, err := svc.Register(context.Background(), model.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	stored := store.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
}

func TestRegisterDuplicate(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), model.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  model.CreateUserRequest
	}{
		{"same username", model.CreateUserRequest{Username: "alice", Email: "other@example.com", Password: "pw"}},
		{"same email", model.CreateUserRequest{Username: "bob", Email: "alice@example.com", Password: "pw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation))
			assert.Equal(t, "username or email already exists", apperror.From(err).Message)
		})
	}
}

func TestRegisterConcurrentDuplicate(t *testing.T) {
	// The pre-check races with concurrent inserts; a unique violation
	// from the insert reports the same validation failure.
	store := newFakeUserStore()
	store.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), model.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Equal(t, "username or email already exists", apperror.From(err).Message)
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), model.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "alice",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.User.Username)

	authUser, err := svc.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, store.users["alice"].ID, authUser.ID)
	assert.Equal(t, "alice", authUser.Username)
}

func TestLoginFailuresAreIndistinct(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), model.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), model.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	_, unknownUser := svc.Login(context.Background(), model.LoginRequest{
		Username: "mallory",
		Password: "hunter2",
	})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.True(t, apperror.IsKind(wrongPassword, apperror.KindUnauthorized))
	assert.True(t, apperror.IsKind(unknownUser, apperror.KindUnauthorized))
	assert.Equal(t, apperror.From(wrongPassword).Message, apperror.From(unknownUser).Message)
}

func TestCurrentUser(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	now := time.Now()
	user := &model.User{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "alice@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	store.users["alice"] = user

	resp, err := svc.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)

	_, err = svc.CurrentUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
