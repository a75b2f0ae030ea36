package model

import "time"

// Submission is one vehicle-listing form instance. Submissions are created once
// and never updated or deleted.
type Submission struct {
	ID          string      `json:"id"`
	CarModel    string      `json:"carModel"`
	Price       string      `json:"price"`
	PhoneNumber string      `json:"phoneNumber"`
	MaxPictures int         `json:"maxPictures"`
	Images      []ImageFile `json:"images"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ImageFile is one uploaded image. Content is request-scoped on the way in and
// omitted from JSON responses; listings expose only the metadata.
type ImageFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Content     []byte `json:"-"`
}
