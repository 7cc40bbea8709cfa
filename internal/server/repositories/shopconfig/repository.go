package shopconfig

import (
	"context"

	"github.com/avigneron/boutique/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context) (*models.ShopConfig, error)
	Save(ctx context.Context, cfg *models.ShopConfig) error
}
