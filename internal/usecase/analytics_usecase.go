package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

const (
	analyticsWindowDays = 7
	topBlogsLimit       = 5
	dayLayout           = "2006-01-02"
)

// AnalyticsUsecase aggregates dashboard figures on every call; nothing is cached.
type AnalyticsUsecase struct {
	userRepo contract.IUserRepository
	blogRepo contract.IBlogRepository
	clock    contract.IClock
	logger   usecasecontract.IAppLogger
}

func NewAnalyticsUsecase(
	userRepo contract.IUserRepository,
	blogRepo contract.IBlogRepository,
	clock contract.IClock,
	logger usecasecontract.IAppLogger,
) *AnalyticsUsecase {
	return &AnalyticsUsecase{userRepo: userRepo, blogRepo: blogRepo, clock: clock, logger: logger}
}

var _ usecasecontract.IAnalyticsUseCase = (*AnalyticsUsecase)(nil)

func (uc *AnalyticsUsecase) GetAnalytics(ctx context.Context, caller *entity.User) (*entity.Analytics, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, internal(uc.logger, "failed to list users", err)
	}
	blogs, err := uc.blogRepo.ListBlogs(ctx, false)
	if err != nil {
		return nil, internal(uc.logger, "failed to list blogs", err)
	}
	return summarize(users, blogs, uc.clock.Now()), nil
}

// summarize builds the analytics snapshot. Histogram buckets are the seven
// UTC days ending today, oldest first.
func summarize(users []*entity.User, blogs []*entity.Blog, now time.Time) *entity.Analytics {
	days := trailingDays(now, analyticsWindowDays)
	signups := make(map[string]int, len(days))
	viewsByDay := make(map[string]int, len(days))

	a := &entity.Analytics{
		TotalUsers: len(users),
		TotalBlogs: len(blogs),
	}
	for _, u := range users {
		if u.IsActive {
			a.ActiveUsers++
		}
		signups[u.CreatedAt.UTC().Format(dayLayout)]++
	}
	for _, b := range blogs {
		if b.IsPublished {
			a.PublishedBlogs++
		}
		a.TotalViews += b.Views
		a.TotalLikes += b.Likes
		a.TotalComments += len(b.Comments)
		viewsByDay[b.CreatedAt.UTC().Format(dayLayout)] += b.Views
	}

	a.UserGrowth = make([]entity.DailyCount, 0, len(days))
	a.BlogViews = make([]entity.DailyCount, 0, len(days))
	for _, d := range days {
		a.UserGrowth = append(a.UserGrowth, entity.DailyCount{Date: d, Count: signups[d]})
		a.BlogViews = append(a.BlogViews, entity.DailyCount{Date: d, Count: viewsByDay[d]})
	}

	ranked := append([]*entity.Blog(nil), blogs...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Views > ranked[j].Views })
	if len(ranked) > topBlogsLimit {
		ranked = ranked[:topBlogsLimit]
	}
	a.TopBlogs = make([]entity.TopBlog, 0, len(ranked))
	for _, b := range ranked {
		a.TopBlogs = append(a.TopBlogs, entity.TopBlog{ID: b.ID, Title: b.Title, Views: b.Views})
	}
	return a
}

func trailingDays(now time.Time, n int) []string {
	today := now.UTC()
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[n-1-i] = today.AddDate(0, 0, -i).Format(dayLayout)
	}
	return days
}
