package service

import (
	"context"

	"github.com/okellojun/HackLab/internal/domain/model"
	"github.com/okellojun/HackLab/internal/domain/repository"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if v := args.Get(0); v != nil {
		return v.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) FindHackerProfile(ctx context.Context, userID string) (*model.HackerProfile, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*model.HackerProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) ListSkills(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) ListAchievements(ctx context.Context, userID string) ([]model.Achievement, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]model.Achievement), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) ListRecentProblems(ctx context.Context, userID string, limit int) ([]model.RecentProblem, error) {
	args := m.Called(ctx, userID, limit)
	if v := args.Get(0); v != nil {
		return v.([]model.RecentProblem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) FindSocial(ctx context.Context, userID string) (model.SocialLinks, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.SocialLinks), args.Error(1)
}

type mockProblemRepo struct {
	mock.Mock
}

func (m *mockProblemRepo) ListPublic(ctx context.Context) ([]model.Problem, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Problem), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockHackathonRepo struct {
	mock.Mock
}

func (m *mockHackathonRepo) ListAll(ctx context.Context) ([]model.Hackathon, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Hackathon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHackathonRepo) ListUpcoming(ctx context.Context, createdBy string, limit int) ([]model.UpcomingEvent, error) {
	args := m.Called(ctx, createdBy, limit)
	if v := args.Get(0); v != nil {
		return v.([]model.UpcomingEvent), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockActivityRepo struct {
	mock.Mock
}

func (m *mockActivityRepo) ListRecent(ctx context.Context, scope repository.ActivityScope, limit int) ([]model.ActivityEntry, error) {
	args := m.Called(ctx, scope, limit)
	if v := args.Get(0); v != nil {
		return v.([]model.ActivityEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStatsRepo struct {
	mock.Mock
}

func (m *mockStatsRepo) PlatformStats(ctx context.Context) (model.PlatformStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.PlatformStats), args.Error(1)
}

func (m *mockStatsRepo) TopHackers(ctx context.Context, limit int) ([]model.TopHacker, error) {
	args := m.Called(ctx, limit)
	if v := args.Get(0); v != nil {
		return v.([]model.TopHacker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStatsRepo) CompanyStats(ctx context.Context, companyID string) (model.CompanyStats, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(model.CompanyStats), args.Error(1)
}

func (m *mockStatsRepo) HackerStats(ctx context.Context, userID string) (model.HackerStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.HackerStats), args.Error(1)
}
