package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}
	jpgHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}
	pdfHeader = []byte("%PDF-1.7 rest")
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		data     []byte
		mime     string
		wantErr  error
	}{
		{"png with matching bytes", "shot.png", pngHeader, "image/png", nil},
		{"jpeg with matching bytes", "photo.jpg", jpgHeader, "image/jpeg", nil},
		{"pdf", "doc.pdf", pdfHeader, "application/pdf", nil},
		{"plain text with charset param", "notes.txt", []byte("hello"), "text/plain; charset=utf-8", nil},
		{"markdown", "README.md", []byte("# hi"), "text/plain; charset=utf-8", nil},
		{"no extension", "Makefile", []byte("all:"), "text/plain", ErrNoExtension},
		{"extension not whitelisted", "run.exe", []byte{0x4D, 0x5A}, "application/octet-stream", ErrExtensionNotAllowed},
		{"png extension with jpeg bytes", "fake.png", jpgHeader, "image/jpeg", ErrContentMismatch},
		{"octet-stream txt rejected", "blob.txt", []byte{0x00, 0x01}, "application/octet-stream", ErrMIMENotAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.filename, tc.data, tc.mime)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateDocxSniffedAsOctetStream(t *testing.T) {
	zipHeader := []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}
	assert.NoError(t, Validate("report.docx", zipHeader, "application/octet-stream"))
	assert.NoError(t, Validate("bundle.zip", zipHeader, "application/octet-stream"))
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"report.pdf", "report.pdf"},
		{"my report (final).pdf", "my_report__final_.pdf"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"änderung.txt", "_nderung.txt"},
		{"???", "file"},
		{"", "file"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestCompressImageRejectsGarbage(t *testing.T) {
	_, err := CompressImage([]byte("definitely not an image"))
	assert.Error(t, err)
}
