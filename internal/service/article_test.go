package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpost/backend/internal/apperror"
	"github.com/inkpost/backend/internal/model"
)

type fakeArticleStore struct {
	articles map[uuid.UUID]*model.Article

	// lastViewer records the viewer passed to the most recent
	// ListArticles call.
	lastViewer   *uuid.UUID
	listRecorded bool
}

func newFakeArticleStore() *fakeArticleStore {
	return &fakeArticleStore{articles: map[uuid.UUID]*model.Article{}}
}

func (f *fakeArticleStore) CreateArticle(_ context.Context, article *model.Article) error {
	copied := *article
	f.articles[article.ID] = &copied
	return nil
}

func (f *fakeArticleStore) GetArticleByID(_ context.Context, id uuid.UUID) (*model.Article, error) {
	if a, ok := f.articles[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeArticleStore) UpdateArticle(_ context.Context, article *model.Article) error {
	if _, ok := f.articles[article.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *article
	f.articles[article.ID] = &copied
	return nil
}

func (f *fakeArticleStore) DeleteArticle(_ context.Context, id uuid.UUID) error {
	if _, ok := f.articles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleStore) ListArticles(_ context.Context, viewer *uuid.UUID, offset, limit int) ([]model.Article, int64, error) {
	f.lastViewer = viewer
	f.listRecorded = true

	visible := make([]model.Article, 0, len(f.articles))
	for _, a := range f.articles {
		public := a.IsPublic != nil && *a.IsPublic
		owned := viewer != nil && a.UserID != nil && *a.UserID == *viewer
		if public || owned {
			visible = append(visible, *a)
		}
	}
	total := int64(len(visible))
	if offset >= len(visible) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(visible) {
		end = len(visible)
	}
	return visible[offset:end], total, nil
}

func (f *fakeArticleStore) add(owner *uuid.UUID, title string, public bool) *model.Article {
	now := time.Now()
	a := &model.Article{
		ID:        uuid.New(),
		Title:     title,
		Content:   "body of " + title,
		UserID:    owner,
		IsPublic:  &public,
		CreatedAt: &now,
	}
	f.articles[a.ID] = a
	return a
}

func TestArticleListAnonymousSeesPublicOnly(t *testing.T) {
	store := newFakeArticleStore()
	owner := uuid.New()
	store.add(&owner, "public post", true)
	store.add(&owner, "draft", false)
	svc := NewArticleService(store)

	result, err := svc.List(context.Background(), nil, model.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.True(t, store.listRecorded)
	assert.Nil(t, store.lastViewer)
	require.Len(t, result.List, 1)
	assert.Equal(t, "public post", result.List[0].Title)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestArticleListAuthenticatedSeesOwnDrafts(t *testing.T) {
	store := newFakeArticleStore()
	owner := uuid.New()
	other := uuid.New()
	store.add(&owner, "public post", true)
	store.add(&owner, "my draft", false)
	store.add(&other, "someone else's draft", false)
	svc := NewArticleService(store)

	viewer := &model.AuthUser{ID: owner, Username: "alice"}
	result, err := svc.List(context.Background(), viewer, model.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.NotNil(t, store.lastViewer)
	assert.Equal(t, owner, *store.lastViewer)
	assert.Equal(t, int64(2), result.Pagination.Total)
}

func TestArticleCreate(t *testing.T) {
	store := newFakeArticleStore()
	svc := NewArticleService(store)
	actor := model.AuthUser{ID: uuid.New(), Username: "alice"}

	public := true
	resp, err := svc.Create(context.Background(), actor, model.CreateArticleRequest{
		Title:    "hello",
		Content:  "world",
		IsPublic: &public,
	})
	require.NoError(t, err)

	assert.Equal(t, "hello", resp.Title)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	stored := store.articles[resp.ID]
	require.NotNil(t, stored)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, actor.ID, *stored.UserID)
	require.NotNil(t, stored.IsPublic)
	assert.True(t, *stored.IsPublic)
}

func TestArticleUpdate(t *testing.T) {
	store := newFakeArticleStore()
	owner := uuid.New()
	article := store.add(&owner, "old title", true)
	svc := NewArticleService(store)
	actor := model.AuthUser{ID: owner, Username: "alice"}

	resp, err := svc.Update(context.Background(), actor, article.ID, model.CreateArticleRequest{
		Title:   "new title",
		Content: "new body",
	})
	require.NoError(t, err)

	assert.Equal(t, "new title", resp.Title)
	assert.Equal(t, "new body", resp.Content)
	// Omitting is_public keeps the stored flag.
	stored := store.articles[article.ID]
	require.NotNil(t, stored.IsPublic)
	assert.True(t, *stored.IsPublic)
}

func TestArticleUpdateTogglesVisibility(t *testing.T) {
	store := newFakeArticleStore()
	owner := uuid.New()
	article := store.add(&owner, "post", true)
	svc := NewArticleService(store)
	actor := model.AuthUser{ID: owner, Username: "alice"}

	private := false
	_, err := svc.Update(context.Background(), actor, article.ID, model.CreateArticleRequest{
		Title:    "post",
		Content:  article.Content,
		IsPublic: &private,
	})
	require.NoError(t, err)

	stored := store.articles[article.ID]
	require.NotNil(t, stored.IsPublic)
	assert.False(t, *stored.IsPublic)
}

func TestArticleUpdateForbiddenForNonOwner(t *testing.T) {
	store := newFakeArticleStore()
	owner := uuid.New()
	article := store.add(&owner, "post", true)
	svc := NewArticleService(store)
	intruder := model.AuthUser{ID: uuid.New(), Username: "mallory"}

	_, err := svc.Update(context.Background(), intruder, article.ID, model.CreateArticleRequest{
		Title:   "defaced",
		Content: "defaced",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	assert.Equal(t, "post", store.articles[article.ID].Title)
}

func TestArticleUpdateForbiddenForOwnerlessArticle(t *testing.T) {
	// Articles whose owner account was deleted keep a NULL user_id and
	// cannot be modified by anyone.
	store := newFakeArticleStore()
	article := store.add(nil, "orphan", true)
	svc := NewArticleService(store)
	actor := model.AuthUser{ID: uuid.New(), Username: "alice"}

	_, err := svc.Update(context.Background(), actor, article.ID, model.CreateArticleRequest{
		Title:   "claimed",
		Content: "claimed",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestArticleDelete(t *testing.T) {
	store := newFakeArticleStore()
	owner := uuid.New()
	article := store.add(&owner, "post", true)
	svc := NewArticleService(store)

	err := svc.Delete(context.Background(), model.AuthUser{ID: owner, Username: "alice"}, article.ID)
	require.NoError(t, err)
	assert.Empty(t, store.articles)
}

func TestArticleDeleteForbiddenForNonOwner(t *testing.T) {
	store := newFakeArticleStore()
	owner := uuid.New()
	article := store.add(&owner, "post", true)
	svc := NewArticleService(store)

	err := svc.Delete(context.Background(), model.AuthUser{ID: uuid.New(), Username: "mallory"}, article.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	assert.Contains(t, store.articles, article.ID)
}

func TestArticleGetNotFound(t *testing.T) {
	svc := NewArticleService(newFakeArticleStore())

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
