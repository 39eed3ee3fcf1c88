package service

import (
	"context"

	"github.com/okellojun/HackLab/internal/common"
	"github.com/okellojun/HackLab/internal/common/security"
	"github.com/okellojun/HackLab/internal/domain/model"
	"github.com/okellojun/HackLab/internal/domain/repository"
)

type DashboardService struct {
	statsRepo     repository.StatsRepository
	activityRepo  repository.ActivityRepository
	hackathonRepo repository.HackathonRepository
}

func NewDashboardService(
	statsRepo repository.StatsRepository,
	activityRepo repository.ActivityRepository,
	hackathonRepo repository.HackathonRepository,
) *DashboardService {
	return &DashboardService{statsRepo: statsRepo, activityRepo: activityRepo, hackathonRepo: hackathonRepo}
}

// Get builds the dashboard variant that matches the caller's role.
func (s *DashboardService) Get(ctx context.Context, p security.Principal) (model.Dashboard, error) {
	switch p.Role {
	case model.RoleCompany:
		return s.company(ctx, p.ID)
	case model.RoleHacker:
		return s.hacker(ctx, p.ID)
	default:
		return nil, common.NewError(common.ErrBadRequest, MsgInvalidRole)
	}
}

func (s *DashboardService) company(ctx context.Context, companyID string) (model.Dashboard, error) {
	stats, err := s.statsRepo.CompanyStats(ctx, companyID)
	if err != nil {
		return nil, err
	}
	activity, err := s.activityRepo.ListRecent(ctx, repository.ActivityScope{CompanyID: companyID}, recentLimit)
	if err != nil {
		return nil, err
	}
	events, err := s.hackathonRepo.ListUpcoming(ctx, companyID, recentLimit)
	if err != nil {
		return nil, err
	}
	return model.CompanyDashboard{
		CompanyStats:   stats.Cards(),
		RecentActivity: orEmpty(activity),
		UpcomingEvents: orEmpty(events),
	}, nil
}

func (s *DashboardService) hacker(ctx context.Context, userID string) (model.Dashboard, error) {
	stats, err := s.statsRepo.HackerStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	activity, err := s.activityRepo.ListRecent(ctx, repository.ActivityScope{HackerID: userID}, recentLimit)
	if err != nil {
		return nil, err
	}
	events, err := s.hackathonRepo.ListUpcoming(ctx, "", recentLimit)
	if err != nil {
		return nil, err
	}
	return model.HackerDashboard{
		HackerStats:    stats.Cards(),
		RecentActivity: orEmpty(activity),
		UpcomingEvents: orEmpty(events),
	}, nil
}
