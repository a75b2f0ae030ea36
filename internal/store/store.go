package store

import (
	"context"
	"errors"

	"autolist/portal/internal/model"
)

var (
	ErrNotFound = errors.New("not_found")
	ErrConflict = errors.New("conflict")
)

type Store interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	CreateSubmission(ctx context.Context, sub model.Submission) (model.Submission, error)
	ListSubmissions(ctx context.Context) ([]model.Submission, error)
}
