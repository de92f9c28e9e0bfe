package service

import (
	"bytes"
	"context"
	"io"
	"testing"

	"shop-admin-api/internal/attachment"
	"shop-admin-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func pngUpload(name string) attachment.Upload {
	return attachment.Upload{
		Filename: name,
		Size:     int64(len(pngBytes)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(pngBytes)), nil
		},
	}
}

func textUpload(name string) attachment.Upload {
	body := []byte("plain text, not a picture")
	return attachment.Upload{
		Filename: name,
		Size:     int64(len(body)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		},
	}
}

// requireFields asserts err is a validation error naming every field
func requireFields(t *testing.T, err error, fields ...string) map[string][]string {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected an app error, got %v", err)
	require.Equal(t, apperror.KindValidation, appErr.Kind, "got %v", err)
	for _, f := range fields {
		assert.Contains(t, appErr.Fields, f)
	}
	return appErr.Fields
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Wooden Chair":        "wooden-chair",
		"  Café   au lait!! ": "cafe-au-lait",
		"Lamp 2000 (new)":     "lamp-2000-new",
		"صندلی چوبی":          "صندلی-چوبی",
		"":                    "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestActorDefaultsToSystem(t *testing.T) {
	assert.Equal(t, "system", actor(context.Background()))
	assert.Equal(t, "42", actor(WithActor(context.Background(), "42")))
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("", true))
	assert.False(t, parseBool("0", true))
	assert.True(t, parseBool("1", false))
	assert.False(t, parseBool("maybe", false))
}
