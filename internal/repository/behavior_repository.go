package repository

import (
	"context"
	"encoding/json"

	"intern-genie/internal/database"
)

// Behavior is one tracked interaction, decoded from the JSON blob stored per
// row. Rows that fail to decode still count as interactions, so they are
// returned as zero values rather than dropped.
type Behavior struct {
	Action   string   `json:"action"`
	Skills   []string `json:"skills"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
}

type BehaviorRepository interface {
	ListByCandidateID(ctx context.Context, candidateID int64) ([]Behavior, error)
}

type PostgresBehaviorRepository struct {
	db database.DB
}

func NewPostgresBehaviorRepository(db database.DB) *PostgresBehaviorRepository {
	return &PostgresBehaviorRepository{db: db}
}

func (r *PostgresBehaviorRepository) ListByCandidateID(ctx context.Context, candidateID int64) ([]Behavior, error) {
	rows, err := r.db.Query(ctx,
		`SELECT behavior_data FROM user_behaviors WHERE user_id = $1`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Behavior, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var b Behavior
		_ = json.Unmarshal([]byte(raw), &b)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ BehaviorRepository = (*PostgresBehaviorRepository)(nil)
