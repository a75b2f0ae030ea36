package postgres

import (
	"context"

	"autolist/portal/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	var out model.User
	err := s.pool.QueryRow(ctx, `
		insert into users (email, name, password_hash)
		values ($1, $2, $3)
		returning id::text, email, name, password_hash, created_at, updated_at
	`, u.Email, u.Name, u.PasswordHash).Scan(
		&out.ID,
		&out.Email,
		&out.Name,
		&out.PasswordHash,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return model.User{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.pool.QueryRow(ctx, `
		select id::text, email, name, password_hash, created_at, updated_at
		from users
		where lower(email) = lower($1)
	`, email).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &u, nil
}
