package service

import (
	"context"

	"github.com/gosimple/slug"
	"github.com/okellojun/HackLab/internal/domain/model"
	"github.com/okellojun/HackLab/internal/domain/repository"
)

type ProblemService struct {
	problemRepo repository.ProblemRepository
}

func NewProblemService(problemRepo repository.ProblemRepository) *ProblemService {
	return &ProblemService{problemRepo: problemRepo}
}

// ListPublic returns every non-Draft problem with its URL slug filled in.
func (s *ProblemService) ListPublic(ctx context.Context) ([]model.Problem, error) {
	problems, err := s.problemRepo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	for i := range problems {
		problems[i].Slug = slug.Make(problems[i].Title)
		if problems[i].Skills == nil {
			problems[i].Skills = []string{}
		}
	}
	if problems == nil {
		problems = []model.Problem{}
	}
	return problems, nil
}
