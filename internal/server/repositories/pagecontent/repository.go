package pagecontent

import (
	"context"

	"github.com/avigneron/boutique/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.PageContent, error)
	Get(ctx context.Context, id string) (*models.PageContent, error)
	GetByKey(ctx context.Context, pageKey string) (*models.PageContent, error)
	Create(ctx context.Context, page *models.PageContent) error
	Update(ctx context.Context, page *models.PageContent) error
	Delete(ctx context.Context, id string) error
}
