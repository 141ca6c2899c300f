package repository

import (
	"context"

	"intern-genie/internal/database"
	"intern-genie/internal/domain/internship"
)

type PostgresInternshipRepository struct {
	db database.DB
}

func NewPostgresInternshipRepository(db database.DB) *PostgresInternshipRepository {
	return &PostgresInternshipRepository{db: db}
}

// ListActive returns active postings in enumeration order. The is_active
// filter is applied here so callers never see inactive rows.
func (r *PostgresInternshipRepository) ListActive(ctx context.Context) ([]internship.Internship, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, COALESCE(location, ''), COALESCE(description, ''),
		        COALESCE(required_skills, ''), COALESCE(preferred_skills, ''),
		        COALESCE(duration, ''), COALESCE(stipend, ''),
		        COALESCE(application_deadline, ''), COALESCE(posted_date, ''),
		        is_active, COALESCE(min_education, ''), experience_required
		 FROM internships
		 WHERE is_active = TRUE
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]internship.Internship, 0)
	for rows.Next() {
		var in internship.Internship
		if err := rows.Scan(
			&in.ID, &in.Title, &in.Company, &in.Location, &in.Description,
			&in.RequiredSkills, &in.PreferredSkills,
			&in.Duration, &in.Stipend,
			&in.ApplicationDeadline, &in.PostedDate,
			&in.IsActive, &in.MinEducation, &in.ExperienceRequired,
		); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ internship.Repository = (*PostgresInternshipRepository)(nil)
