package products

import (
	"context"

	"github.com/avigneron/boutique/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Product, error)
	ListByCategorySlug(ctx context.Context, slug string) ([]*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}
