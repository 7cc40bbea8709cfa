// Package pagecontent provides the PostgreSQL-backed repository for keyed
// editable site content. Page bodies are stored as JSONB documents.
package pagecontent

import (
	"context"
	"database/sql"
	"encoding/json"
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

func scanPage(row interface{ Scan(dest ...any) error }) (*models.PageContent, error) {
	p := &models.PageContent{}
	var body []byte
	if err := row.Scan(&p.ID, &p.PageKey, &body, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &p.Content); err != nil {
		return nil, fmt.Errorf("content decode error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.PageContent, error) {
	query := `SELECT id, page_key, content, created_at, updated_at
		 FROM page_content ORDER BY page_key ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.PageContent
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) getBy(ctx context.Context, column, value string) (*models.PageContent, error) {
	query := `SELECT id, page_key, content, created_at, updated_at
		 FROM page_content WHERE ` + column + ` = $1`

	p, err := scanPage(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.PageContent, error) {
	return r.getBy(ctx, "id", id)
}

func (r *PostgresRepository) GetByKey(ctx context.Context, pageKey string) (*models.PageContent, error) {
	return r.getBy(ctx, "page_key", pageKey)
}

func (r *PostgresRepository) Create(ctx context.Context, page *models.PageContent) error {
	body, err := json.Marshal(page.Content)
	if err != nil {
		return fmt.Errorf("content encode error: %w", err)
	}

	query := `INSERT INTO page_content (id, page_key, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`

	_, err = r.db.ExecContext(ctx, query,
		page.ID, page.PageKey, body, page.CreatedAt, page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, page *models.PageContent) error {
	body, err := json.Marshal(page.Content)
	if err != nil {
		return fmt.Errorf("content encode error: %w", err)
	}

	query := `UPDATE page_content SET page_key = $2, content = $3, updated_at = $4
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, page.ID, page.PageKey, body, page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM page_content WHERE id = $1`, id)
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
