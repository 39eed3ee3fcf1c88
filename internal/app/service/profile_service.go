package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/okellojun/HackLab/internal/common"
	"github.com/okellojun/HackLab/internal/domain/model"
	"github.com/okellojun/HackLab/internal/domain/repository"
)

// recentLimit bounds every "recent" or "top" list the API returns.
const recentLimit = 5

type ProfileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewProfileService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo, profileRepo: profileRepo}
}

// GetProfile merges the user's core fields with its hacker profile and child
// rows. Absent child rows come back empty rather than nil.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	profile := &model.Profile{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}

	if profile.HackerProfile, err = s.profileRepo.FindHackerProfile(ctx, userID); err != nil {
		return nil, err
	}
	if profile.Skills, err = s.profileRepo.ListSkills(ctx, userID); err != nil {
		return nil, err
	}
	if profile.Achievements, err = s.profileRepo.ListAchievements(ctx, userID); err != nil {
		return nil, err
	}
	if profile.RecentProblems, err = s.profileRepo.ListRecentProblems(ctx, userID, recentLimit); err != nil {
		return nil, err
	}
	if profile.Social, err = s.profileRepo.FindSocial(ctx, userID); err != nil {
		return nil, err
	}

	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Achievements == nil {
		profile.Achievements = []model.Achievement{}
	}
	if profile.RecentProblems == nil {
		profile.RecentProblems = []model.RecentProblem{}
	}
	return profile, nil
}
