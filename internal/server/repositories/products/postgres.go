// Package products provides the PostgreSQL-backed repository for catalogue
// items.
package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/dbx"
	"github.com/avigneron/boutique/internal/server/models"
)

const productColumns = `id, name, slug, description, price, video_url, thumbnail_url, order_link, COALESCE(category_id, ''), is_active, created_at, updated_at`

// PostgresRepository implements product storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price,
		&p.VideoURL, &p.ThumbnailURL, &p.OrderLink, &p.CategoryID,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) queryList(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	return r.queryList(ctx, query)
}

func (r *PostgresRepository) ListByCategorySlug(ctx context.Context, slug string) ([]*models.Product, error) {
	query := `SELECT ` + prefixedProductColumns("p") + `
		 FROM products p
		 JOIN categories c ON c.id = p.category_id
		 WHERE c.slug = $1
		 ORDER BY p.created_at DESC`
	return r.queryList(ctx, query, slug)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, product *models.Product) error {
	query := `INSERT INTO products
		 (id, name, slug, description, price, video_url, thumbnail_url, order_link, category_id, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Slug, product.Description, product.Price,
		product.VideoURL, product.ThumbnailURL, product.OrderLink, product.CategoryID,
		product.IsActive, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, product *models.Product) error {
	query := `UPDATE products SET
		 name = $2, slug = $3, description = $4, price = $5, video_url = $6,
		 thumbnail_url = $7, order_link = $8, category_id = NULLIF($9, ''),
		 is_active = $10, updated_at = $11
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Slug, product.Description, product.Price,
		product.VideoURL, product.ThumbnailURL, product.OrderLink, product.CategoryID,
		product.IsActive, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
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

func prefixedProductColumns(alias string) string {
	return alias + `.id, ` + alias + `.name, ` + alias + `.slug, ` + alias + `.description, ` +
		alias + `.price, ` + alias + `.video_url, ` + alias + `.thumbnail_url, ` + alias + `.order_link, ` +
		`COALESCE(` + alias + `.category_id, ''), ` + alias + `.is_active, ` + alias + `.created_at, ` + alias + `.updated_at`
}
