package repository

import (
	"database/sql"
	"errors"

	"github.com/dropspace/dropspace/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrFileNotFound = errors.New("file not found")
)

type FileRepository interface {
	Create(file *model.File) error
	ByUser(userID string) ([]*model.File, error)
	ByKey(userID, key string) (*model.File, error)
	DeleteByKey(userID, key string) (int, error)
	DeleteByPathnames(userID string, pathnames []string) (int, error)
}

type fileRepository struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *model.File) error {
	query := `INSERT INTO files (id, user_id, name, mime_type, size, pathname, s3_key, s3_bucket, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		file.ID,
		file.UserID,
		file.Name,
		file.MimeType,
		file.Size,
		file.Pathname,
		file.S3Key,
		file.S3Bucket,
		file.CreatedAt,
	)

	return err
}

func (r *fileRepository) ByUser(userID string) ([]*model.File, error) {
	var files []*model.File
	query := `SELECT * FROM files WHERE user_id = $1`

	err := r.db.Select(&files, query, userID)
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (r *fileRepository) ByKey(userID, key string) (*model.File, error) {
	file := &model.File{}
	query := `SELECT * FROM files WHERE user_id = $1 AND s3_key = $2`

	err := r.db.Get(file, query, userID, key)
	if err == sql.ErrNoRows {
		return nil, ErrFileNotFound
	}

	return file, err
}

// DeleteByKey removes the metadata row for an object key. A zero count
// is not an error: deleting an already-deleted file is a no-op.
func (r *fileRepository) DeleteByKey(userID, key string) (int, error) {
	query := `DELETE FROM files WHERE user_id = $1 AND s3_key = $2`
	result, err := r.db.Exec(query, userID, key)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}

func (r *fileRepository) DeleteByPathnames(userID string, pathnames []string) (int, error) {
	if len(pathnames) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`DELETE FROM files WHERE user_id = ? AND pathname IN (?)`, userID, pathnames)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Exec(r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}
