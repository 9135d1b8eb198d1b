package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/carkenya/internal/infrastructure/repository/memory"
)

const sample = `{
  "cars": [
    {"id": "car-1", "name": "Toyota Supra", "brand": "Toyota", "model": "Supra", "year": 2023,
     "category": "JDM", "image": "", "specs": {"engine": "3.0L I6", "horsepower": 382,
     "topSpeed": "250 km/h", "acceleration": "3.9s"}, "description": "", "trending": true}
  ],
  "news": [
    {"id": "news-1", "title": "Safari Rally", "description": "", "image": "", "source": "KBC",
     "publishedAt": "2025-03-01", "category": "kenya"}
  ]
}`

func TestSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	repo := memory.NewCatalogRepository(memory.NewStore())
	cars, news, err := Seed(context.Background(), repo, path)
	require.NoError(t, err)
	assert.Equal(t, 1, cars)
	assert.Equal(t, 1, news)

	got, err := repo.GetCars(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 382, got[0].Specs.Horsepower)
	assert.True(t, got[0].Trending)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
