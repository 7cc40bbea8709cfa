// Package socialmedia provides the PostgreSQL-backed repository for social
// profile links.
package socialmedia

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/dbx"
	"github.com/avigneron/boutique/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.SocialMedia, error) {
	query := `SELECT id, platform, url, icon, created_at, updated_at
		 FROM social_media ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.SocialMedia
	for rows.Next() {
		var item models.SocialMedia
		if err := rows.Scan(&item.ID, &item.Platform, &item.URL, &item.Icon,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.SocialMedia, error) {
	query := `SELECT id, platform, url, icon, created_at, updated_at
		 FROM social_media WHERE id = $1`

	item := &models.SocialMedia{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Platform,
		&item.URL, &item.Icon, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, link *models.SocialMedia) error {
	query := `INSERT INTO social_media (id, platform, url, icon, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		link.ID, link.Platform, link.URL, link.Icon, link.CreatedAt, link.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, link *models.SocialMedia) error {
	query := `UPDATE social_media SET platform = $2, url = $3, icon = $4, updated_at = $5
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		link.ID, link.Platform, link.URL, link.Icon, link.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM social_media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
