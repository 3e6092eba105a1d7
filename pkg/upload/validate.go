package upload

import (
	"bytes"
	"path/filepath"
	"strings"
)

// MaxFileSize caps attachment uploads at 10 MiB.
const MaxFileSize = 10 << 20

// Magic byte signatures per allowed extension. Text-like files have no
// signature and rely on MIME detection.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}},
	".webp": {{0x52, 0x49, 0x46, 0x46}},
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},
	".zip":  {{0x50, 0x4B, 0x03, 0x04}},
	".docx": {{0x50, 0x4B, 0x03, 0x04}},
	".txt":  {},
	".md":   {},
	".csv":  {},
}

var allowedMIMETypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
	"application/zip": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	"text/csv":   true,
}

// Validate checks an attachment payload before it touches storage:
// extension whitelist, magic bytes matching the extension, MIME whitelist.
// detectedMIME comes from http.DetectContentType and may carry parameters
// (e.g. "text/plain; charset=utf-8").
func Validate(filename string, data []byte, detectedMIME string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ErrNoExtension
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return ErrExtensionNotAllowed
	}

	if len(signatures) > 0 {
		matched := false
		for _, sig := range signatures {
			if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
				matched = true
				break
			}
		}
		if !matched {
			return ErrContentMismatch
		}
	}

	mime := detectedMIME
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if mime == "application/octet-stream" {
		// docx is often sniffed as octet-stream; magic bytes already
		// confirmed the zip container.
		if ext == ".docx" || ext == ".zip" {
			return nil
		}
		return ErrMIMENotAllowed
	}
	if !allowedMIMETypes[mime] {
		return ErrMIMENotAllowed
	}
	return nil
}
