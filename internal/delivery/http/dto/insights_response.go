package dto

import "intern-genie/internal/usecase/insights"

type UserInsightsData struct {
	TotalInteractions       int            `json:"total_interactions"`
	ActionBreakdown         map[string]int `json:"action_breakdown"`
	PreferredSkills         map[string]int `json:"preferred_skills"`
	PreferredCompanies      map[string]int `json:"preferred_companies"`
	PreferredLocations      map[string]int `json:"preferred_locations"`
	ApplicationSuccessRate  float64        `json:"application_success_rate"`
	LearningRecommendations []string       `json:"learning_recommendations"`
}

type UserInsightsResponse struct {
	Success  bool             `json:"success"`
	Insights UserInsightsData `json:"insights"`
	Message  string           `json:"message"`
}

type MarketInsightsData struct {
	TotalApplications    int            `json:"total_applications"`
	SuccessRate          float64        `json:"success_rate"`
	PopularCompanies     map[string]int `json:"popular_companies"`
	TrendingSkills       []string       `json:"trending_skills"`
	LocationDistribution map[string]int `json:"location_distribution"`
}

type MarketInsightsResponse struct {
	Success  bool               `json:"success"`
	Insights MarketInsightsData `json:"insights"`
	Message  string             `json:"message"`
}

type SimilarUserData struct {
	UserID          int64    `json:"user_id"`
	SimilarityScore float64  `json:"similarity_score"`
	CommonSkills    []string `json:"common_skills"`
}

type PopularInternshipData struct {
	InternshipID     int64   `json:"internship_id"`
	Title            string  `json:"title"`
	Company          string  `json:"company"`
	ApplicationCount int     `json:"application_count"`
	SuccessRate      float64 `json:"success_rate"`
}

type CollaborativeInsightsData struct {
	SimilarUsers       []SimilarUserData       `json:"similar_users"`
	PopularInternships []PopularInternshipData `json:"popular_internships"`
	SkillCorrelations  map[string][]string     `json:"skill_correlations"`
}

type CollaborativeInsightsResponse struct {
	Success  bool                      `json:"success"`
	Insights CollaborativeInsightsData `json:"insights"`
	Message  string                    `json:"message"`
}

type TrendingSkillData struct {
	Skill      string  `json:"skill"`
	Frequency  int     `json:"frequency"`
	GrowthRate float64 `json:"growth_rate"`
}

type TrendingSkillsResponse struct {
	Success bool                `json:"success"`
	Skills  []TrendingSkillData `json:"skills"`
	Message string              `json:"message"`
}

func NewUserInsightsResponse(in insights.UserInsights) UserInsightsResponse {
	return UserInsightsResponse{
		Success: true,
		Insights: UserInsightsData{
			TotalInteractions:       in.TotalInteractions,
			ActionBreakdown:         in.ActionBreakdown,
			PreferredSkills:         in.PreferredSkills,
			PreferredCompanies:      in.PreferredCompanies,
			PreferredLocations:      in.PreferredLocations,
			ApplicationSuccessRate:  in.ApplicationSuccessRate,
			LearningRecommendations: in.LearningRecommendations,
		},
		Message: "User insights generated successfully",
	}
}

func NewMarketInsightsResponse(in insights.MarketInsights) MarketInsightsResponse {
	return MarketInsightsResponse{
		Success: true,
		Insights: MarketInsightsData{
			TotalApplications:    in.TotalApplications,
			SuccessRate:          in.SuccessRate,
			PopularCompanies:     in.PopularCompanies,
			TrendingSkills:       in.TrendingSkills,
			LocationDistribution: in.LocationDistribution,
		},
		Message: "Market insights generated successfully",
	}
}

func NewCollaborativeInsightsResponse(in insights.CollaborativeInsights) CollaborativeInsightsResponse {
	users := make([]SimilarUserData, 0, len(in.SimilarUsers))
	for _, u := range in.SimilarUsers {
		users = append(users, SimilarUserData{
			UserID:          u.UserID,
			SimilarityScore: u.SimilarityScore,
			CommonSkills:    u.CommonSkills,
		})
	}

	internships := make([]PopularInternshipData, 0, len(in.PopularInternships))
	for _, p := range in.PopularInternships {
		internships = append(internships, PopularInternshipData{
			InternshipID:     p.InternshipID,
			Title:            p.Title,
			Company:          p.Company,
			ApplicationCount: p.ApplicationCount,
			SuccessRate:      p.SuccessRate,
		})
	}

	return CollaborativeInsightsResponse{
		Success: true,
		Insights: CollaborativeInsightsData{
			SimilarUsers:       users,
			PopularInternships: internships,
			SkillCorrelations:  in.SkillCorrelations,
		},
		Message: "Collaborative insights generated successfully",
	}
}

func NewTrendingSkillsResponse(in []insights.TrendingSkill) TrendingSkillsResponse {
	skills := make([]TrendingSkillData, 0, len(in))
	for _, s := range in {
		skills = append(skills, TrendingSkillData{
			Skill:      s.Skill,
			Frequency:  s.Frequency,
			GrowthRate: s.GrowthRate,
		})
	}

	return TrendingSkillsResponse{
		Success: true,
		Skills:  skills,
		Message: "Trending skills generated successfully",
	}
}
