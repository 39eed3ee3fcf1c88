package service

import (
	"context"

	"github.com/okellojun/HackLab/internal/domain/model"
	"github.com/okellojun/HackLab/internal/domain/repository"
)

type AnalyticsService struct {
	statsRepo    repository.StatsRepository
	activityRepo repository.ActivityRepository
}

func NewAnalyticsService(statsRepo repository.StatsRepository, activityRepo repository.ActivityRepository) *AnalyticsService {
	return &AnalyticsService{statsRepo: statsRepo, activityRepo: activityRepo}
}

func (s *AnalyticsService) Get(ctx context.Context) (*model.Analytics, error) {
	stats, err := s.statsRepo.PlatformStats(ctx)
	if err != nil {
		return nil, err
	}
	activity, err := s.activityRepo.ListRecent(ctx, repository.ActivityScope{}, recentLimit)
	if err != nil {
		return nil, err
	}
	top, err := s.statsRepo.TopHackers(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return &model.Analytics{
		Stats:          stats.Cards(),
		RecentActivity: orEmpty(activity),
		TopHackers:     orEmpty(top),
	}, nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
