package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/repository/memory"
)

func TestCatalogUsecase_Filters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	repo := memory.NewCatalogRepository(env.store)
	require.NoError(t, repo.SetCars(ctx, []entity.Car{
		{ID: "c1", Name: "GT-R", Category: entity.CarCategoryJDM, Trending: true},
		{ID: "c2", Name: "Supra", Category: entity.CarCategoryJDM},
		{ID: "c3", Name: "Model S", Category: entity.CarCategoryEVs, Trending: true},
	}))
	require.NoError(t, repo.SetNews(ctx, []entity.NewsArticle{
		{ID: "n1", Category: "kenya"},
		{ID: "n2", Category: "global"},
	}))

	cars, err := env.catalog.ListCars(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, cars, 3)

	cars, err = env.catalog.ListCars(ctx, "jdm", false)
	require.NoError(t, err)
	assert.Len(t, cars, 2)

	cars, err = env.catalog.ListCars(ctx, "JDM", true)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "c1", cars[0].ID)

	news, err := env.catalog.ListNews(ctx, "kenya")
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, "n1", news[0].ID)
}
