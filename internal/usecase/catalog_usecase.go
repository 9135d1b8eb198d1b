package usecase

import (
	"context"
	"strings"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

type CatalogUsecase struct {
	catalogRepo contract.ICatalogRepository
	logger      usecasecontract.IAppLogger
}

func NewCatalogUsecase(catalogRepo contract.ICatalogRepository, logger usecasecontract.IAppLogger) *CatalogUsecase {
	return &CatalogUsecase{catalogRepo: catalogRepo, logger: logger}
}

var _ usecasecontract.ICatalogUseCase = (*CatalogUsecase)(nil)

// ListCars filters by category (case-insensitive) and optionally to trending entries.
func (uc *CatalogUsecase) ListCars(ctx context.Context, category string, trendingOnly bool) ([]entity.Car, error) {
	cars, err := uc.catalogRepo.GetCars(ctx)
	if err != nil {
		return nil, internal(uc.logger, "failed to load cars", err)
	}
	out := make([]entity.Car, 0, len(cars))
	for _, c := range cars {
		if category != "" && !strings.EqualFold(string(c.Category), category) {
			continue
		}
		if trendingOnly && !c.Trending {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (uc *CatalogUsecase) ListNews(ctx context.Context, category string) ([]entity.NewsArticle, error) {
	news, err := uc.catalogRepo.GetNews(ctx)
	if err != nil {
		return nil, internal(uc.logger, "failed to load news", err)
	}
	out := make([]entity.NewsArticle, 0, len(news))
	for _, n := range news {
		if category != "" && !strings.EqualFold(n.Category, category) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
