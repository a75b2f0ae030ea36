package httpapi

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"autolist/portal/internal/config"
	"autolist/portal/internal/model"
	"autolist/portal/internal/store/memory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) (*Server, *memory.Store) {
	t.Helper()
	st := memory.NewStore()
	cfg := config.Config{
		JWTSecret:      "test-secret",
		MaxUploadBytes: 1 << 20,
		MaxUploadFiles: 5,
	}
	return NewServer(cfg, st, zap.NewNop()), st
}

func seedUser(t *testing.T, st *memory.Store, email, name, password string) model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := st.CreateUser(context.Background(), model.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	})
	require.NoError(t, err)
	return user
}

type testImage struct {
	filename    string
	contentType string
	content     []byte
}

// buildSubmissionForm encodes fields and image parts as multipart/form-data
// and returns the body plus the content type to send.
func buildSubmissionForm(t *testing.T, fields map[string]string, images []testImage) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	for _, img := range images {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="images"; filename="`+img.filename+`"`)
		hdr.Set("Content-Type", img.contentType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(img.content)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"carModel":    "Civic",
		"price":       "15000",
		"phoneNumber": "01700000000",
		"maxPictures": "2",
	}
}
