package repository

import (
	"context"

	"intern-genie/internal/database"
)

type Application struct {
	ID           int64
	CandidateID  int64
	InternshipID int64
	AppliedAt    string
	Status       string
}

type ApplicationRepository interface {
	ListAll(ctx context.Context) ([]Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) ListAll(ctx context.Context) ([]Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, candidate_id, internship_id, COALESCE(applied_at, ''), COALESCE(status, '')
		 FROM applications`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.CandidateID, &a.InternshipID, &a.AppliedAt, &a.Status); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ ApplicationRepository = (*PostgresApplicationRepository)(nil)
