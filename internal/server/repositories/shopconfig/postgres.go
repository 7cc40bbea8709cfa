// Package shopconfig provides the PostgreSQL-backed repository for the
// singleton shop appearance record.
package shopconfig

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

func (r *PostgresRepository) Get(ctx context.Context) (*models.ShopConfig, error) {
	query := `SELECT id, shop_name, background_color, background_image_url, logo_url,
		 dark_mode, footer_text, created_at, updated_at
		 FROM shop_config WHERE singleton_key = 'shop'`

	cfg := &models.ShopConfig{}
	err := r.db.QueryRowContext(ctx, query).Scan(&cfg.ID, &cfg.ShopName,
		&cfg.BackgroundColor, &cfg.BackgroundImageURL, &cfg.LogoURL,
		&cfg.DarkMode, &cfg.FooterText, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cfg, nil
}

// Save upserts the singleton row. The unique singleton_key closes the
// read-then-insert race: two concurrent saves both settle on one row.
func (r *PostgresRepository) Save(ctx context.Context, cfg *models.ShopConfig) error {
	query := `INSERT INTO shop_config
		 (id, singleton_key, shop_name, background_color, background_image_url, logo_url, dark_mode, footer_text, created_at, updated_at)
		 VALUES ($1, 'shop', $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (singleton_key)
		 DO UPDATE SET
			shop_name = EXCLUDED.shop_name,
			background_color = EXCLUDED.background_color,
			background_image_url = EXCLUDED.background_image_url,
			logo_url = EXCLUDED.logo_url,
			dark_mode = EXCLUDED.dark_mode,
			footer_text = EXCLUDED.footer_text,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		cfg.ID, cfg.ShopName, cfg.BackgroundColor, cfg.BackgroundImageURL,
		cfg.LogoURL, cfg.DarkMode, cfg.FooterText, cfg.CreatedAt, cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
