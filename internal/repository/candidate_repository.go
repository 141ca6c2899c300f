package repository

import (
	"context"
	"errors"

	"intern-genie/internal/database"
	"intern-genie/internal/domain/candidate"

	"github.com/jackc/pgx/v5"
)

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, email, password_hash, COALESCE(name, ''),
	COALESCE(education, ''), COALESCE(skills, ''), COALESCE(location, ''),
	experience_years, COALESCE(phone, ''), COALESCE(linkedin, ''), COALESCE(github, '')`

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id int64) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	return scanCandidate(row)
}

func (r *PostgresCandidateRepository) GetByEmail(ctx context.Context, email string) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE email = $1`, email)
	return scanCandidate(row)
}

func scanCandidate(row database.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	err := row.Scan(
		&c.ID, &c.Email, &c.PasswordHash, &c.Name,
		&c.Education, &c.Skills, &c.Location,
		&c.ExperienceYears, &c.Phone, &c.LinkedIn, &c.GitHub,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrNotFound
		}
		return candidate.Candidate{}, err
	}
	return c, nil
}

var _ candidate.Repository = (*PostgresCandidateRepository)(nil)
