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

type articleStore interface {
	CreateArticle(ctx context.Context, article *model.Article) error
	GetArticleByID(ctx context.Context, id uuid.UUID) (*model.Article, error)
	UpdateArticle(ctx context.Context, article *model.Article) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	ListArticles(ctx context.Context, viewer *uuid.UUID, offset, limit int) ([]model.Article, int64, error)
}

// ArticleService serves the article resource endpoints.
type ArticleService struct {
	store articleStore
}

func NewArticleService(store articleStore) *ArticleService {
	return &ArticleService{store: store}
}

// List returns one page of articles. Anonymous viewers see public
// articles only; authenticated viewers additionally see their own.
func (s *ArticleService) List(ctx context.Context, viewer *model.AuthUser, p model.Pagination) (*model.PagedResult[model.ArticleResponse], error) {
	var viewerID *uuid.UUID
	if viewer != nil {
		viewerID = &viewer.ID
	}

	articles, total, err := s.store.ListArticles(ctx, viewerID, p.Offset(), p.Limit())
	if err != nil {
		log.Error().Err(err).Msg("article list query failed")
		return nil, apperror.NewDatabaseError("failed to list articles", err)
	}

	list := make([]model.ArticleResponse, 0, len(articles))
	for i := range articles {
		list = append(list, articles[i].Response())
	}

	return &model.PagedResult[model.ArticleResponse]{
		List:       list,
		Pagination: model.NewPageInfo(p, total),
	}, nil
}

func (s *ArticleService) Get(ctx context.Context, id uuid.UUID) (*model.ArticleResponse, error) {
	article, err := s.store.GetArticleByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperror.NewNotFoundError("article not found")
		}
		log.Error().Err(err).Msg("article lookup failed")
		return nil, apperror.NewDatabaseError("failed to get article", err)
	}

	resp := article.Response()
	return &resp, nil
}

// Create stores a new article owned by the actor.
func (s *ArticleService) Create(ctx context.Context, actor model.AuthUser, req model.CreateArticleRequest) (*model.ArticleResponse, error) {
	now := time.Now()
	ownerID := actor.ID
	article := &model.Article{
		ID:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		UserID:    &ownerID,
		IsPublic:  req.IsPublic,
		CreatedAt: &now,
	}

	if err := s.store.CreateArticle(ctx, article); err != nil {
		log.Error().Err(err).Msg("article insert failed")
		return nil, apperror.NewDatabaseError("failed to create article", err)
	}

	resp := article.Response()
	return &resp, nil
}

// Update modifies an article. Only the owner may update it; a nil
// IsPublic in the request leaves the stored flag unchanged.
func (s *ArticleService) Update(ctx context.Context, actor model.AuthUser, id uuid.UUID, req model.CreateArticleRequest) (*model.ArticleResponse, error) {
	article, err := s.fetchOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	article.Title = req.Title
	article.Content = req.Content
	if req.IsPublic != nil {
		article.IsPublic = req.IsPublic
	}

	if err := s.store.UpdateArticle(ctx, article); err != nil {
		if db.IsNoRows(err) {
			return nil, apperror.NewNotFoundError("article not found")
		}
		log.Error().Err(err).Msg("article update failed")
		return nil, apperror.NewDatabaseError("failed to update article", err)
	}

	resp := article.Response()
	return &resp, nil
}

// Delete removes an article. Only the owner may delete it.
func (s *ArticleService) Delete(ctx context.Context, actor model.AuthUser, id uuid.UUID) error {
	if _, err := s.fetchOwned(ctx, actor, id); err != nil {
		return err
	}

	if err := s.store.DeleteArticle(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return apperror.NewNotFoundError("article not found")
		}
		log.Error().Err(err).Msg("article delete failed")
		return apperror.NewDatabaseError("failed to delete article", err)
	}
	return nil
}

// fetchOwned loads an article and checks the actor owns it. Ownerless
// articles cannot be modified through the API.
func (s *ArticleService) fetchOwned(ctx context.Context, actor model.AuthUser, id uuid.UUID) (*model.Article, error) {
	article, err := s.store.GetArticleByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperror.NewNotFoundError("article not found")
		}
		log.Error().Err(err).Msg("article lookup failed")
		return nil, apperror.NewDatabaseError("failed to get article", err)
	}

	if article.UserID == nil || *article.UserID != actor.ID {
		return nil, apperror.NewForbiddenError("cannot modify another user's article")
	}
	return article, nil
}
