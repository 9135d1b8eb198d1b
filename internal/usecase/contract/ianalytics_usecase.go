package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type IAnalyticsUseCase interface {
	GetAnalytics(ctx context.Context, caller *entity.User) (*entity.Analytics, error)
}
