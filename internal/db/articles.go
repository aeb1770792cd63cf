package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/inkpost/backend/internal/model"
)

func (db *Postgres) CreateArticle(ctx context.Context, article *model.Article) error {
	query := `
		INSERT INTO articles (id, title, content, user_id, is_public, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := db.Pool.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.UserID,
		article.IsPublic,
		article.CreatedAt,
	)
	return err
}

func (db *Postgres) GetArticleByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	query := `
		SELECT id, title, content, user_id, is_public, created_at
		FROM articles
		WHERE id = $1
	`
	var article model.Article
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.UserID,
		&article.IsPublic,
		&article.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (db *Postgres) UpdateArticle(ctx context.Context, article *model.Article) error {
	query := `
		UPDATE articles
		SET title = $2, content = $3, is_public = $4
		WHERE id = $1
	`
	tag, err := db.Pool.Exec(ctx, query, article.ID, article.Title, article.Content, article.IsPublic)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListArticles returns one page ordered by creation time descending
// plus the unpaged total. Without a viewer only public articles are
// visible; with one, the viewer's own articles are included as well.
func (db *Postgres) ListArticles(ctx context.Context, viewer *uuid.UUID, offset, limit int) ([]model.Article, int64, error) {
	countQuery := `SELECT COUNT(*) FROM articles WHERE is_public = TRUE`
	listQuery := `
		SELECT id, title, content, user_id, is_public, created_at
		FROM articles
		WHERE is_public = TRUE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	countArgs := []interface{}{}
	listArgs := []interface{}{limit, offset}
	if viewer != nil {
		countQuery = `SELECT COUNT(*) FROM articles WHERE (user_id = $1 OR is_public = TRUE)`
		listQuery = `
			SELECT id, title, content, user_id, is_public, created_at
			FROM articles
			WHERE (user_id = $1 OR is_public = TRUE)
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`
		countArgs = []interface{}{*viewer}
		listArgs = []interface{}{*viewer, limit, offset}
	}

	var total int64
	if err := db.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := db.Pool.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var article model.Article
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.UserID,
			&article.IsPublic,
			&article.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}
