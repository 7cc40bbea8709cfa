package socialmedia

import (
	"context"

	"github.com/avigneron/boutique/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.SocialMedia, error)
	Get(ctx context.Context, id string) (*models.SocialMedia, error)
	Create(ctx context.Context, link *models.SocialMedia) error
	Update(ctx context.Context, link *models.SocialMedia) error
	Delete(ctx context.Context, id string) error
}
