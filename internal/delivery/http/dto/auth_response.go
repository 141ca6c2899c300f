package dto

import "intern-genie/internal/domain/candidate"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Education       string `json:"education,omitempty"`
	Skills          string `json:"skills,omitempty"`
	Location        string `json:"location,omitempty"`
	ExperienceYears int    `json:"experience_years"`
	Phone           string `json:"phone,omitempty"`
	LinkedIn        string `json:"linkedin,omitempty"`
	GitHub          string `json:"github,omitempty"`
}

type LoginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
	Message string   `json:"message"`
}

type RefreshResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

func NewUserInfo(c candidate.Candidate) UserInfo {
	return UserInfo{
		ID:              c.ID,
		Email:           c.Email,
		Name:            c.Name,
		Education:       c.Education,
		Skills:          c.Skills,
		Location:        c.Location,
		ExperienceYears: c.ExperienceYears,
		Phone:           c.Phone,
		LinkedIn:        c.LinkedIn,
		GitHub:          c.GitHub,
	}
}
