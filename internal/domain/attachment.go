package domain

import (
	"context"
	"time"
)

type Attachment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EntryDate string    `json:"entry_date"` // YYYY-MM-DD
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"` // storage key {user_id}/{date}_{uuid}_{name}
	FileType  string    `json:"file_type,omitempty"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}

// AttachmentUpload carries the raw multipart payload into the planner service.
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

type AttachmentRepository interface {
	ListByDate(ctx context.Context, userID, dateStr string) ([]Attachment, error)
	GetByID(ctx context.Context, userID, id string) (*Attachment, error)
	Insert(ctx context.Context, att *Attachment) error
	Delete(ctx context.Context, userID, id string) error
}

// ObjectStore is the object-storage capability behind attachments.
type ObjectStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
	CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
	Remove(ctx context.Context, path string) error
}
