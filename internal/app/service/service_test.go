package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/okellojun/HackLab/internal/common"
	"github.com/okellojun/HackLab/internal/common/security"
	"github.com/okellojun/HackLab/internal/domain/model"
	"github.com/okellojun/HackLab/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetProfile_UnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByID", mock.Anything, "ghost").Return(nil, common.ErrNotFound)

	_, err := NewProfileService(users, new(mockProfileRepo)).GetProfile(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, MsgUserNotFound, common.ClientMessage(err))
}

func TestGetProfile_NoHackerProfile(t *testing.T) {
	users := new(mockUserRepo)
	profiles := new(mockProfileRepo)
	users.On("FindByID", mock.Anything, "c-1").Return(&model.User{ID: "c-1", Username: "acme", Email: "hr@acme.io", Role: "company"}, nil)
	profiles.On("FindHackerProfile", mock.Anything, "c-1").Return(nil, nil)
	profiles.On("ListSkills", mock.Anything, "c-1").Return(nil, nil)
	profiles.On("ListAchievements", mock.Anything, "c-1").Return(nil, nil)
	profiles.On("ListRecentProblems", mock.Anything, "c-1", 5).Return(nil, nil)
	profiles.On("FindSocial", mock.Anything, "c-1").Return(model.SocialLinks{}, nil)

	got, err := NewProfileService(users, profiles).GetProfile(context.Background(), "c-1")
	require.NoError(t, err)

	want := &model.Profile{
		ID: "c-1", Username: "acme", Email: "hr@acme.io", Role: "company",
		Skills:         []string{},
		Achievements:   []model.Achievement{},
		RecentProblems: []model.RecentProblem{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestListPublic_AddsSlugs(t *testing.T) {
	repo := new(mockProblemRepo)
	repo.On("ListPublic", mock.Anything).Return([]model.Problem{
		{ID: "p-1", Title: "Build a Payment Gateway", Status: model.StatusActive},
		{ID: "p-2", Title: "AI/ML Fraud Detection", Status: model.StatusClosed},
	}, nil)

	problems, err := NewProblemService(repo).ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, "build-a-payment-gateway", problems[0].Slug)
	assert.Equal(t, "ai-ml-fraud-detection", problems[1].Slug)
	assert.Equal(t, []string{}, problems[0].Skills)
}

func TestHackathonList_EmptyIsNotNil(t *testing.T) {
	repo := new(mockHackathonRepo)
	repo.On("ListAll", mock.Anything).Return(nil, nil)

	got, err := NewHackathonService(repo).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Hackathon{}, got)
}

func TestAnalytics_Get(t *testing.T) {
	stats := new(mockStatsRepo)
	activity := new(mockActivityRepo)
	stats.On("PlatformStats", mock.Anything).Return(model.PlatformStats{TotalProblems: 3, ActiveHackers: 1, HackathonsHosted: 2, TotalBountyPaid: 2500}, nil)
	stats.On("TopHackers", mock.Anything, 5).Return([]model.TopHacker{{Name: "alice", Solved: 1, Earnings: 2500, Rating: 4.9}}, nil)
	activity.On("ListRecent", mock.Anything, repository.ActivityScope{}, 5).Return(nil, nil)

	got, err := NewAnalyticsService(stats, activity).Get(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Stats, 4)
	assert.Equal(t, model.StatCard{Label: "Total Bounty Paid", Value: "$2500"}, got.Stats[3])
	assert.Equal(t, []model.ActivityEntry{}, got.RecentActivity)
	assert.Len(t, got.TopHackers, 1)
}

func TestAnalytics_StorageFailure(t *testing.T) {
	stats := new(mockStatsRepo)
	stats.On("PlatformStats", mock.Anything).Return(model.PlatformStats{}, errors.New("boom"))

	_, err := NewAnalyticsService(stats, new(mockActivityRepo)).Get(context.Background())
	require.Error(t, err)
}

func TestDashboard_Company(t *testing.T) {
	stats := new(mockStatsRepo)
	activity := new(mockActivityRepo)
	hackathons := new(mockHackathonRepo)
	start := model.NewDate(time.Now().Year()+1, time.January, 10)

	stats.On("CompanyStats", mock.Anything, "c-1").Return(model.CompanyStats{ActiveProblems: 2, TotalHackers: 5, HackathonsHosted: 1, BountyPaid: 0}, nil)
	activity.On("ListRecent", mock.Anything, repository.ActivityScope{CompanyID: "c-1"}, 5).Return([]model.ActivityEntry{}, nil)
	hackathons.On("ListUpcoming", mock.Anything, "c-1", 5).Return([]model.UpcomingEvent{{ID: "h-1", Title: "Hack", StartDate: start, Prize: 100}}, nil)

	d, err := NewDashboardService(stats, activity, hackathons).Get(context.Background(), security.Principal{ID: "c-1", Role: "company"})
	require.NoError(t, err)

	cd, ok := d.(model.CompanyDashboard)
	require.True(t, ok, "expected company variant, got %T", d)
	assert.Equal(t, "Active Problems", cd.CompanyStats[0].Label)
	assert.Equal(t, "2", cd.CompanyStats[0].Value)
	assert.Len(t, cd.UpcomingEvents, 1)
	hackathons.AssertExpectations(t)
}

func TestDashboard_Hacker(t *testing.T) {
	stats := new(mockStatsRepo)
	activity := new(mockActivityRepo)
	hackathons := new(mockHackathonRepo)

	stats.On("HackerStats", mock.Anything, "u-1").Return(model.HackerStats{ProblemsSolved: 47, ReputationScore: 4.9, HackathonsWon: 8, Earnings: 15750}, nil)
	activity.On("ListRecent", mock.Anything, repository.ActivityScope{HackerID: "u-1"}, 5).Return(nil, nil)
	hackathons.On("ListUpcoming", mock.Anything, "", 5).Return(nil, nil)

	d, err := NewDashboardService(stats, activity, hackathons).Get(context.Background(), security.Principal{ID: "u-1", Role: "hacker"})
	require.NoError(t, err)

	hd, ok := d.(model.HackerDashboard)
	require.True(t, ok, "expected hacker variant, got %T", d)
	assert.Equal(t, []model.StatCard{
		{Label: "Problems Solved", Value: "47"},
		{Label: "Reputation Score", Value: "4.9"},
		{Label: "Hackathons Won", Value: "8"},
		{Label: "Earnings", Value: "$15750"},
	}, hd.HackerStats)
	assert.Equal(t, []model.UpcomingEvent{}, hd.UpcomingEvents)
}

func TestDashboard_InvalidRole(t *testing.T) {
	stats := new(mockStatsRepo)
	_, err := NewDashboardService(stats, new(mockActivityRepo), new(mockHackathonRepo)).
		Get(context.Background(), security.Principal{ID: "x", Role: "admin"})
	require.ErrorIs(t, err, common.ErrBadRequest)
	assert.Equal(t, MsgInvalidRole, common.ClientMessage(err))
	stats.AssertNotCalled(t, "CompanyStats", mock.Anything, mock.Anything)
	stats.AssertNotCalled(t, "HackerStats", mock.Anything, mock.Anything)
}
