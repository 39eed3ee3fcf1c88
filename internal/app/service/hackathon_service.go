package service

import (
	"context"

	"github.com/okellojun/HackLab/internal/domain/model"
	"github.com/okellojun/HackLab/internal/domain/repository"
)

type HackathonService struct {
	hackathonRepo repository.HackathonRepository
}

func NewHackathonService(hackathonRepo repository.HackathonRepository) *HackathonService {
	return &HackathonService{hackathonRepo: hackathonRepo}
}

func (s *HackathonService) List(ctx context.Context) ([]model.Hackathon, error) {
	hackathons, err := s.hackathonRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if hackathons == nil {
		hackathons = []model.Hackathon{}
	}
	return hackathons, nil
}
