package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"autolist/portal/internal/model"

	"go.uber.org/zap"
)

// multipartMemory bounds how much of a parsed form is held in memory before
// spooling to disk. The total request size is capped separately.
const multipartMemory = 10 << 20

type submissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// handleVehicleSubmission decodes a multipart vehicle-listing form, validates
// the required fields, and persists exactly one record. Nothing is written on
// any failure path.
func (s *Server) handleVehicleSubmission(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	carModel := strings.TrimSpace(r.FormValue("carModel"))
	price := strings.TrimSpace(r.FormValue("price"))
	phoneNumber := strings.TrimSpace(r.FormValue("phoneNumber"))
	maxPicturesRaw := strings.TrimSpace(r.FormValue("maxPictures"))

	if carModel == "" || price == "" || phoneNumber == "" || maxPicturesRaw == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	maxPictures, err := strconv.Atoi(maxPicturesRaw)
	if err != nil || maxPictures < 1 {
		writeError(w, http.StatusBadRequest, "maxPictures must be a positive number")
		return
	}

	fileHeaders := r.MultipartForm.File["images"]
	if len(fileHeaders) > s.cfg.MaxUploadFiles {
		writeError(w, http.StatusBadRequest, "Too many files")
		return
	}
	if len(fileHeaders) > maxPictures {
		writeError(w, http.StatusBadRequest, "Image count exceeds maxPictures")
		return
	}

	images := make([]model.ImageFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		images = append(images, model.ImageFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     content,
		})
	}

	sub := model.Submission{
		CarModel:    carModel,
		Price:       price,
		PhoneNumber: phoneNumber,
		MaxPictures: maxPictures,
		Images:      images,
	}

	if _, err := s.store.CreateSubmission(r.Context(), sub); err != nil {
		s.log.Error("submission insert failed",
			zap.Error(err),
			zap.String("user_id", userIDFromContext(r.Context())),
		)
		writeJSON(w, http.StatusInternalServerError, submissionResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}

	writeJSON(w, http.StatusOK, submissionResponse{
		Success: true,
		Message: "Vehicle form submit successfully",
	})
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := s.store.ListSubmissions(r.Context())
	if err != nil {
		s.log.Error("submission list failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"submissions": subs})
}
