package dto

import (
	"intern-genie/internal/domain/internship"
	"intern-genie/internal/usecase"
)

type InternshipInfo struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	Company             string `json:"company"`
	Location            string `json:"location,omitempty"`
	Description         string `json:"description,omitempty"`
	RequiredSkills      string `json:"required_skills,omitempty"`
	PreferredSkills     string `json:"preferred_skills,omitempty"`
	Duration            string `json:"duration,omitempty"`
	Stipend             string `json:"stipend,omitempty"`
	ApplicationDeadline string `json:"application_deadline,omitempty"`
	PostedDate          string `json:"posted_date,omitempty"`
	IsActive            bool   `json:"is_active"`
	MinEducation        string `json:"min_education,omitempty"`
	ExperienceRequired  int    `json:"experience_required"`
}

type RecommendationItem struct {
	Internship  InternshipInfo `json:"internship"`
	Score       float64        `json:"score"`
	Explanation string         `json:"explanation"`
}

type RecommendationResponse struct {
	Success         bool                 `json:"success"`
	Recommendations []RecommendationItem `json:"recommendations"`
	Total           int                  `json:"total"`
	Message         string               `json:"message"`
}

func NewInternshipInfo(in internship.Internship) InternshipInfo {
	return InternshipInfo{
		ID:                  in.ID,
		Title:               in.Title,
		Company:             in.Company,
		Location:            in.Location,
		Description:         in.Description,
		RequiredSkills:      in.RequiredSkills,
		PreferredSkills:     in.PreferredSkills,
		Duration:            in.Duration,
		Stipend:             in.Stipend,
		ApplicationDeadline: in.ApplicationDeadline,
		PostedDate:          in.PostedDate,
		IsActive:            in.IsActive,
		MinEducation:        in.MinEducation,
		ExperienceRequired:  in.ExperienceRequired,
	}
}

func NewRecommendationResponse(res usecase.RecommendationResult) RecommendationResponse {
	items := make([]RecommendationItem, 0, len(res.Recommendations))
	for _, rec := range res.Recommendations {
		items = append(items, RecommendationItem{
			Internship:  NewInternshipInfo(rec.Internship),
			Score:       rec.Score,
			Explanation: rec.Explanation,
		})
	}

	return RecommendationResponse{
		Success:         true,
		Recommendations: items,
		Total:           res.Total,
		Message:         "Recommendations generated successfully",
	}
}
