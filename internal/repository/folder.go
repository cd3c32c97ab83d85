package repository

import (
	"database/sql"
	"errors"

	"github.com/dropspace/dropspace/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrFolderNotFound = errors.New("folder not found")
)

type FolderRepository interface {
	Create(folder *model.Folder) error
	ByUser(userID string) ([]*model.Folder, error)
	ByPathname(userID, pathname string) (*model.Folder, error)
	DeleteByIDs(userID string, ids []string) (int, error)
}

type folderRepository struct {
	db *sqlx.DB
}

func NewFolderRepository(db *sqlx.DB) FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) Create(folder *model.Folder) error {
	query := `INSERT INTO folders (id, user_id, name, parent, pathname, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		folder.ID,
		folder.UserID,
		folder.Name,
		folder.Parent,
		folder.Pathname,
		folder.CreatedAt,
	)

	return err
}

func (r *folderRepository) ByUser(userID string) ([]*model.Folder, error) {
	var folders []*model.Folder
	query := `SELECT * FROM folders WHERE user_id = $1 ORDER BY id`

	err := r.db.Select(&folders, query, userID)
	if err != nil {
		return nil, err
	}

	return folders, nil
}

func (r *folderRepository) ByPathname(userID, pathname string) (*model.Folder, error) {
	folder := &model.Folder{}
	query := `SELECT * FROM folders WHERE user_id = $1 AND pathname = $2`

	err := r.db.Get(folder, query, userID, pathname)
	if err == sql.ErrNoRows {
		return nil, ErrFolderNotFound
	}

	return folder, err
}

// DeleteByIDs removes the given folder rows and reports how many were
// actually deleted, so callers can adjust counters accurately.
func (r *folderRepository) DeleteByIDs(userID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`DELETE FROM folders WHERE user_id = ? AND id IN (?)`, userID, ids)
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
