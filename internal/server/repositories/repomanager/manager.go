package repomanager

import (
	"context"
	"database/sql"

	"github.com/avigneron/boutique/internal/dbx"
	"github.com/avigneron/boutique/internal/server/repositories/categories"
	"github.com/avigneron/boutique/internal/server/repositories/pagecontent"
	"github.com/avigneron/boutique/internal/server/repositories/products"
	"github.com/avigneron/boutique/internal/server/repositories/shopconfig"
	"github.com/avigneron/boutique/internal/server/repositories/socialmedia"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Products(db dbx.DBTX) products.Repository
	Categories(db dbx.DBTX) categories.Repository
	SocialMedia(db dbx.DBTX) socialmedia.Repository
	PageContent(db dbx.DBTX) pagecontent.Repository
	ShopConfig(db dbx.DBTX) shopconfig.Repository
}
