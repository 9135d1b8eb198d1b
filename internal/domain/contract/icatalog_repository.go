package contract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// ICatalogRepository serves the read-only reference lists.
type ICatalogRepository interface {
	SetCars(ctx context.Context, cars []entity.Car) error
	GetCars(ctx context.Context) ([]entity.Car, error)
	SetNews(ctx context.Context, news []entity.NewsArticle) error
	GetNews(ctx context.Context) ([]entity.NewsArticle, error)
}
