// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/avigneron/boutique/internal/dbx"
	"github.com/avigneron/boutique/internal/server/migrations"
	"github.com/avigneron/boutique/internal/server/repositories/categories"
	"github.com/avigneron/boutique/internal/server/repositories/pagecontent"
	"github.com/avigneron/boutique/internal/server/repositories/products"
	"github.com/avigneron/boutique/internal/server/repositories/shopconfig"
	"github.com/avigneron/boutique/internal/server/repositories/socialmedia"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

// Products returns a products.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Products(db dbx.DBTX) products.Repository {
	return products.NewPostgresRepository(db)
}

// Categories returns a categories.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return categories.NewPostgresRepository(db)
}

// SocialMedia returns a socialmedia.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) SocialMedia(db dbx.DBTX) socialmedia.Repository {
	return socialmedia.NewPostgresRepository(db)
}

// PageContent returns a pagecontent.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) PageContent(db dbx.DBTX) pagecontent.Repository {
	return pagecontent.NewPostgresRepository(db)
}

// ShopConfig returns a shopconfig.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) ShopConfig(db dbx.DBTX) shopconfig.Repository {
	return shopconfig.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
