package postgres

import (
	"context"
	"errors"
	"strings"

	"autolist/portal/internal/model"
)

// CreateSubmission inserts the submission row and its images in one
// transaction, so a failure leaves no partial record behind.
func (s *Store) CreateSubmission(ctx context.Context, sub model.Submission) (model.Submission, error) {
	if strings.TrimSpace(sub.CarModel) == "" {
		return model.Submission{}, errors.New("car_model_required")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return model.Submission{}, mapPgErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	out := sub
	err = tx.QueryRow(ctx, `
		insert into submissions (car_model, price, phone_number, max_pictures)
		values ($1, $2, $3, $4)
		returning id::text, created_at
	`, sub.CarModel, sub.Price, sub.PhoneNumber, sub.MaxPictures).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return model.Submission{}, mapPgErr(err)
	}

	for i, img := range sub.Images {
		_, err = tx.Exec(ctx, `
			insert into submission_images (submission_id, position, filename, content_type, size, content)
			values ($1::uuid, $2, $3, $4, $5, $6)
		`, out.ID, i, img.Filename, img.ContentType, img.Size, img.Content)
		if err != nil {
			return model.Submission{}, mapPgErr(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Submission{}, mapPgErr(err)
	}
	return out, nil
}

// ListSubmissions returns all submissions with image metadata only; the image
// bytes stay in the database.
func (s *Store) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	rows, err := s.pool.Query(ctx, `
		select id::text, car_model, price, phone_number, max_pictures, created_at
		from submissions
		order by created_at asc
	`)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	var out []model.Submission
	index := make(map[string]int)
	for rows.Next() {
		var sub model.Submission
		if err := rows.Scan(&sub.ID, &sub.CarModel, &sub.Price, &sub.PhoneNumber, &sub.MaxPictures, &sub.CreatedAt); err != nil {
			return nil, mapPgErr(err)
		}
		index[sub.ID] = len(out)
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgErr(err)
	}

	imgRows, err := s.pool.Query(ctx, `
		select submission_id::text, filename, content_type, size
		from submission_images
		order by submission_id, position
	`)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var subID string
		var img model.ImageFile
		if err := imgRows.Scan(&subID, &img.Filename, &img.ContentType, &img.Size); err != nil {
			return nil, mapPgErr(err)
		}
		if i, ok := index[subID]; ok {
			out[i].Images = append(out[i].Images, img)
		}
	}
	if err := imgRows.Err(); err != nil {
		return nil, mapPgErr(err)
	}
	return out, nil
}
