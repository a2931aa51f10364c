package filesController

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(filename, contentType string) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: filename, Header: h}
}

func TestStoredFilename(t *testing.T) {
	name := StoredFilename("My Holiday Pic.PNG")

	assert.True(t, strings.HasPrefix(name, "my-holiday-pic-"))
	assert.True(t, strings.HasSuffix(name, ".png"))
}

func TestStoredFilenameDistinctAcrossNames(t *testing.T) {
	a := StoredFilename("photo one.jpg")
	b := StoredFilename("photo two.jpg")

	assert.NotEqual(t, a, b)
}

func TestAllowedImage(t *testing.T) {
	assert.True(t, AllowedImage(header("a.jpg", "image/jpeg")))
	assert.True(t, AllowedImage(header("a.PNG", "image/png")))
	assert.True(t, AllowedImage(header("a.gif", "image/gif")))

	assert.False(t, AllowedImage(header("a.pdf", "application/pdf")))
	assert.False(t, AllowedImage(header("a.jpg", "application/octet-stream")))
	assert.False(t, AllowedImage(header("a.exe", "image/png")))
}
