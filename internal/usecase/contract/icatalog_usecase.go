package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// ICatalogUseCase serves the read-only car and news lists. Empty filters match everything.
type ICatalogUseCase interface {
	ListCars(ctx context.Context, category string, trendingOnly bool) ([]entity.Car, error)
	ListNews(ctx context.Context, category string) ([]entity.NewsArticle, error)
}
