package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// File is the on-disk layout of a catalog seed.
type File struct {
	Cars []entity.Car         `json:"cars"`
	News []entity.NewsArticle `json:"news"`
}

// LoadFile reads a catalog seed from path.
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return &f, nil
}

// Seed loads path into repo and returns the number of cars and news entries stored.
func Seed(ctx context.Context, repo contract.ICatalogRepository, path string) (int, int, error) {
	f, err := LoadFile(path)
	if err != nil {
		return 0, 0, err
	}
	if err := repo.SetCars(ctx, f.Cars); err != nil {
		return 0, 0, err
	}
	if err := repo.SetNews(ctx, f.News); err != nil {
		return 0, 0, err
	}
	return len(f.Cars), len(f.News), nil
}
