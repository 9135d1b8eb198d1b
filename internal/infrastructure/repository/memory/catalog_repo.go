package memory

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type CatalogRepository struct {
	store *Store
}

var _ contract.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) SetCars(ctx context.Context, cars []entity.Car) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.cars = append([]entity.Car(nil), cars...)
	return nil
}

func (r *CatalogRepository) GetCars(ctx context.Context) ([]entity.Car, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]entity.Car{}, r.store.cars...), nil
}

func (r *CatalogRepository) SetNews(ctx context.Context, news []entity.NewsArticle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.news = append([]entity.NewsArticle(nil), news...)
	return nil
}

func (r *CatalogRepository) GetNews(ctx context.Context) ([]entity.NewsArticle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]entity.NewsArticle{}, r.store.news...), nil
}
