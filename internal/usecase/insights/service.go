package insights

import (
	"context"
	"errors"

	"intern-genie/internal/repository"
)

var ErrInternal = errors.New("internal error")

const DefaultTrendingLimit = 10

type Service struct {
	behaviors    repository.BehaviorRepository
	applications repository.ApplicationRepository
	source       Source
}

func NewService(behaviors repository.BehaviorRepository, applications repository.ApplicationRepository, source Source) *Service {
	if source == nil {
		source = NewStaticSource()
	}
	return &Service{behaviors: behaviors, applications: applications, source: source}
}

// UserInsights aggregates the candidate's tracked interactions into
// frequency breakdowns. Success rate and learning recommendations come from
// the pluggable source until real aggregation backs them.
func (s *Service) UserInsights(ctx context.Context, candidateID int64) (UserInsights, error) {
	behaviors, err := s.behaviors.ListByCandidateID(ctx, candidateID)
	if err != nil {
		return UserInsights{}, ErrInternal
	}

	out := UserInsights{
		TotalInteractions:       len(behaviors),
		ActionBreakdown:         make(map[string]int),
		PreferredSkills:         make(map[string]int),
		PreferredCompanies:      make(map[string]int),
		PreferredLocations:      make(map[string]int),
		ApplicationSuccessRate:  s.source.ApplicationSuccessRate(),
		LearningRecommendations: s.source.LearningRecommendations(),
	}

	for _, b := range behaviors {
		if b.Action != "" {
			out.ActionBreakdown[b.Action]++
		}
		for _, skill := range b.Skills {
			if skill != "" {
				out.PreferredSkills[skill]++
			}
		}
		if b.Company != "" {
			out.PreferredCompanies[b.Company]++
		}
		if b.Location != "" {
			out.PreferredLocations[b.Location]++
		}
	}

	return out, nil
}

// MarketInsights derives the application success rate from stored
// applications; the remaining fields come from the source.
func (s *Service) MarketInsights(ctx context.Context) (MarketInsights, error) {
	applications, err := s.applications.ListAll(ctx)
	if err != nil {
		return MarketInsights{}, ErrInternal
	}

	total := len(applications)
	accepted := 0
	for _, a := range applications {
		if a.Status == "accepted" {
			accepted++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(accepted) / float64(total)
	}

	return MarketInsights{
		TotalApplications:    total,
		SuccessRate:          rate,
		PopularCompanies:     s.source.PopularCompanies(),
		TrendingSkills:       s.source.TrendingSkillNames(),
		LocationDistribution: s.source.LocationDistribution(),
	}, nil
}

func (s *Service) CollaborativeInsights(ctx context.Context) (CollaborativeInsights, error) {
	return s.source.Collaborative(), nil
}

func (s *Service) TrendingSkills(ctx context.Context, limit int) ([]TrendingSkill, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	skills := s.source.TrendingSkills()
	if limit < len(skills) {
		skills = skills[:limit]
	}
	return skills, nil
}
