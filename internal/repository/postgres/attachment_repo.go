package postgres

import (
	"context"
	"errors"

	"go-pulse-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type attachmentRepository struct {
	db *pgxpool.Pool
}

func NewAttachmentRepository(db *pgxpool.Pool) domain.AttachmentRepository {
	return &attachmentRepository{db: db}
}

const attachmentColumns = `id, user_id, to_char(entry_date, 'YYYY-MM-DD'),
	file_name, file_path, COALESCE(file_type, ''), COALESCE(file_size, 0), created_at`

func (r *attachmentRepository) ListByDate(ctx context.Context, userID, dateStr string) ([]domain.Attachment, error) {
	query := `SELECT ` + attachmentColumns + `
	          FROM attachments WHERE user_id = $1 AND entry_date = $2
	          ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, userID, dateStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var atts []domain.Attachment
	for rows.Next() {
		var a domain.Attachment
		if err := rows.Scan(&a.ID, &a.UserID, &a.EntryDate, &a.FileName, &a.FilePath, &a.FileType, &a.FileSize, &a.CreatedAt); err != nil {
			return nil, err
		}
		atts = append(atts, a)
	}
	return atts, rows.Err()
}

func (r *attachmentRepository) GetByID(ctx context.Context, userID, id string) (*domain.Attachment, error) {
	query := `SELECT ` + attachmentColumns + `
	          FROM attachments WHERE id = $1 AND user_id = $2`

	var a domain.Attachment
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&a.ID, &a.UserID, &a.EntryDate, &a.FileName, &a.FilePath, &a.FileType, &a.FileSize, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attachmentRepository) Insert(ctx context.Context, att *domain.Attachment) error {
	query := `INSERT INTO attachments (user_id, entry_date, file_name, file_path, file_type, file_size)
	          VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
	          RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		att.UserID, att.EntryDate, att.FileName, att.FilePath, att.FileType, att.FileSize,
	).Scan(&att.ID, &att.CreatedAt)
}

func (r *attachmentRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM attachments WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
