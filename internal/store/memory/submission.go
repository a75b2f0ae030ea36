package memory

import (
	"context"
	"errors"
	"strings"
	"time"

	"autolist/portal/internal/model"

	"github.com/google/uuid"
)

func (s *Store) CreateSubmission(_ context.Context, sub model.Submission) (model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(sub.CarModel) == "" {
		return model.Submission{}, errors.New("car_model_required")
	}

	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC()

	// Copy the image slice so later caller mutations cannot reach the store.
	images := make([]model.ImageFile, len(sub.Images))
	copy(images, sub.Images)
	sub.Images = images

	s.submissions[sub.ID] = sub
	s.order = append(s.order, sub.ID)
	return sub, nil
}

func (s *Store) ListSubmissions(_ context.Context) ([]model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Submission, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.submissions[id])
	}
	return out, nil
}
