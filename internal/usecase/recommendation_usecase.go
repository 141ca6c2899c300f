package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"intern-genie/internal/domain/candidate"
	"intern-genie/internal/domain/internship"
	"intern-genie/internal/domain/recommend"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrMalformedProfile  = errors.New("malformed profile")
	ErrMalformedPosting  = errors.New("malformed posting")
	ErrInternal          = errors.New("internal error")
)

const DefaultRecommendationLimit = 5

type RecommendationParams struct {
	Limit    int
	UseCache bool
}

type ScoredInternship struct {
	Internship  internship.Internship `json:"internship"`
	Score       float64               `json:"score"`
	Explanation string                `json:"explanation"`
}

type RecommendationResult struct {
	Recommendations []ScoredInternship `json:"recommendations"`
	Total           int                `json:"total"`
}

// RecommendationCache stores assembled results keyed by candidate and limit.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, candidateID int64, params RecommendationParams) (RecommendationResult, error)
}

type Recommendation struct {
	candidates  candidate.Repository
	internships internship.Repository
	cache       RecommendationCache
	cacheTTL    time.Duration
}

func NewRecommendationUsecase(
	candidates candidate.Repository,
	internships internship.Repository,
	cache RecommendationCache,
	cacheTTL time.Duration,
) *Recommendation {
	return &Recommendation{
		candidates:  candidates,
		internships: internships,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// GetRecommendations runs one ranking pass: fetch the profile and the active
// postings, score and explain each posting, sort, truncate. Scoring a posting
// has no side effects, so the only failure modes are store access and
// malformed numeric fields.
func (u *Recommendation) GetRecommendations(ctx context.Context, candidateID int64, params RecommendationParams) (RecommendationResult, error) {
	limit := params.Limit
	if limit < 0 {
		limit = DefaultRecommendationLimit
	}

	cacheKey := recommendationCacheKey(candidateID, limit)
	if u.cache != nil && params.UseCache {
		var cached RecommendationResult
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	cand, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return RecommendationResult{}, ErrCandidateNotFound
		}
		return RecommendationResult{}, ErrInternal
	}
	if cand.ExperienceYears < 0 {
		return RecommendationResult{}, ErrMalformedProfile
	}

	postings, err := u.internships.ListActive(ctx)
	if err != nil {
		return RecommendationResult{}, ErrInternal
	}

	scored := make([]ScoredInternship, 0, len(postings))
	for _, in := range postings {
		if in.ExperienceRequired < 0 {
			return RecommendationResult{}, ErrMalformedPosting
		}
		score := recommend.Score(cand, in)
		scored = append(scored, ScoredInternship{
			Internship:  in,
			Score:       score,
			Explanation: recommend.Explain(cand, in, score),
		})
	}

	// Stable sort: equal scores keep posting enumeration order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit < len(scored) {
		scored = scored[:limit]
	}

	result := RecommendationResult{
		Recommendations: scored,
		Total:           len(scored),
	}

	if u.cache != nil && params.UseCache {
		_ = u.cache.SetJSON(ctx, cacheKey, result, u.cacheTTL)
	}

	return result, nil
}

func recommendationCacheKey(candidateID int64, limit int) string {
	return fmt.Sprintf("recommendations:candidate:%d:limit:%d", candidateID, limit)
}

var _ RecommendationUsecase = (*Recommendation)(nil)
