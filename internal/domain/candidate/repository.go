package candidate

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("candidate not found")

type Repository interface {
	GetByID(ctx context.Context, id int64) (Candidate, error)
	GetByEmail(ctx context.Context, email string) (Candidate, error)
}
